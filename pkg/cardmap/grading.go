package cardmap

import (
	"regexp"
	"strings"

	domain "github.com/donaldgifford/card-ledger/pkg/types"
)

// gradePattern matches a grade of 1-10 with optional half grades.
const gradePattern = `(10|[1-9](?:\.5)?)`

type gradingRule struct {
	company domain.GradingCompany
	re      *regexp.Regexp
}

// gradingRules are tried in order and the first match wins. Group 1 of each
// pattern is the grade.
var gradingRules = []gradingRule{
	{
		company: domain.GraderPSA,
		re:      regexp.MustCompile(`(?i)\bPSA\s*(?:GEM\s*(?:MT|MINT)\s*)?` + gradePattern + `\b`),
	},
	{
		company: domain.GraderBGS,
		re: regexp.MustCompile(
			`(?i)\b(?:BGS|BECKETT)\s*(?:BLACK\s*LABEL\s*)?(?:PRISTINE\s*)?(?:GEM\s*MINT\s*)?` + gradePattern + `\b`,
		),
	},
	{
		company: domain.GraderCGC,
		re:      regexp.MustCompile(`(?i)\bCGC\s*(?:PRISTINE\s*|GEM\s*MINT\s*)?` + gradePattern + `\b`),
	},
	{
		company: domain.GraderSGC,
		re:      regexp.MustCompile(`(?i)\bSGC\s*(?:GEM\s*MINT\s*)?` + gradePattern + `\b`),
	},
}

// graderAspectNames maps fragments of eBay's "Professional Grader" aspect
// values to grading companies.
var graderAspectNames = []struct {
	fragment string
	company  domain.GradingCompany
}{
	{"professional sports authenticator", domain.GraderPSA},
	{"(psa)", domain.GraderPSA},
	{"beckett", domain.GraderBGS},
	{"(bgs)", domain.GraderBGS},
	{"certified guaranty", domain.GraderCGC},
	{"(cgc)", domain.GraderCGC},
	{"sportscard guaranty", domain.GraderSGC},
	{"(sgc)", domain.GraderSGC},
}

// DetectGrading finds a grading marker such as "PSA 10" or "BGS 9.5" in a
// title. Returns false when the title carries no marker.
func DetectGrading(title string) (domain.Grading, bool) {
	for _, r := range gradingRules {
		if m := r.re.FindStringSubmatch(title); len(m) > 1 {
			return domain.Grading{Company: r.company, Grade: m[1]}, true
		}
	}
	return domain.Grading{}, false
}

// gradingFromAspects reads the "Professional Grader" and "Grade" item
// aspects. The grade is empty when the aspect is missing.
func gradingFromAspects(aspects map[string][]string) (domain.Grading, bool) {
	grader := strings.ToLower(aspect(aspects, "Professional Grader"))
	if grader == "" {
		return domain.Grading{}, false
	}

	for _, g := range graderAspectNames {
		if strings.Contains(grader, g.fragment) {
			return domain.Grading{
				Company: g.company,
				Grade:   strings.TrimSpace(aspect(aspects, "Grade")),
			}, true
		}
	}

	// Some sellers put the bare acronym in the aspect.
	if g, ok := DetectGrading(grader + " " + aspect(aspects, "Grade")); ok {
		return g, true
	}

	return domain.Grading{}, false
}

// aspect returns the first value of a named aspect, matching the name
// case-insensitively.
func aspect(aspects map[string][]string, name string) string {
	for k, v := range aspects {
		if strings.EqualFold(k, name) && len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func stripGrading(title string) string {
	for _, r := range gradingRules {
		title = r.re.ReplaceAllString(title, " ")
	}
	return title
}
