package cardmap

import (
	"regexp"
	"strings"
)

var (
	// cardNumberRegex matches set-numbered fragments like "#4/102",
	// "025/165" or "TG05/TG30".
	cardNumberRegex = regexp.MustCompile(`(?i)#?\b([A-Z]{0,3}\d{1,3}[A-Z]?)\s*/\s*([A-Z]{0,3}\d{1,3})\b`)

	// hashNumberRegex matches a bare "#58" or "#SV49" when there is no
	// set total.
	hashNumberRegex = regexp.MustCompile(`(?i)#\s*([A-Z]{0,4}\d{1,4}[A-Z]?)\b`)

	conditionWordsRegex = regexp.MustCompile(
		`(?i)\b(?:gem\s+mint|near\s+mint|mint\s+condition|lightly\s+played|moderately\s+played|heavily\s+played|` +
			`nm(?:[/-]m(?:t|int)?)?|lp|mp|dmg|damaged|mint|graded|slabbed)\b`,
	)

	shippingRegex = regexp.MustCompile(
		`(?i)\b(?:free\s+(?:shipping|ship|s&h|delivery)|fast\s+(?:shipping|ship|delivery)|` +
			`ships?\s+(?:fast|free|same\s+day|today|quickly|next\s+day)|same\s+day\s+ship(?:ping)?|` +
			`tracked\s+shipping)\b`,
	)

	punctuationRegex = regexp.MustCompile(`[|!*~+=]+|\s-+\s|\(\s*\)|\[\s*\]`)
)

// CleanTitle strips grading markers, condition words, shipping claims and
// card-number fragments from a listing title. It returns the cleaned card
// name and the card number it found, if any. Best effort only.
func CleanTitle(title string) (name, cardNumber string) {
	s := stripGrading(title)

	if m := cardNumberRegex.FindStringSubmatch(s); len(m) > 2 {
		cardNumber = strings.ToUpper(m[1]) + "/" + strings.ToUpper(m[2])
		s = cardNumberRegex.ReplaceAllString(s, " ")
	} else if m := hashNumberRegex.FindStringSubmatch(s); len(m) > 1 {
		cardNumber = strings.ToUpper(m[1])
		s = hashNumberRegex.ReplaceAllString(s, " ")
	}

	s = conditionWordsRegex.ReplaceAllString(s, " ")
	s = shippingRegex.ReplaceAllString(s, " ")
	s = punctuationRegex.ReplaceAllString(s, " ")

	name = strings.Join(strings.Fields(s), " ")
	name = strings.Trim(name, " -,:;/#.")
	return name, cardNumber
}
