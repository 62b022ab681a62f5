package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// User queries.
const (
	queryUpsertUser = `
		INSERT INTO users (id, email, created_at)
		VALUES (@id, @email, now())
		ON CONFLICT (id) DO UPDATE SET email = EXCLUDED.email
		RETURNING created_at`

	queryGetUser = `
		SELECT id, email, created_at
		FROM users
		WHERE id = $1`
)

// Provider token queries.
const (
	queryGetToken = `
		SELECT user_id, provider, access_token, access_token_expires_at,
			refresh_token, refresh_token_expires_at, provider_username, updated_at
		FROM provider_tokens
		WHERE user_id = $1 AND provider = $2`

	queryUpsertToken = `
		INSERT INTO provider_tokens (
			user_id, provider, access_token, access_token_expires_at,
			refresh_token, refresh_token_expires_at, provider_username, updated_at
		) VALUES (
			@user_id, @provider, @access_token, @access_token_expires_at,
			@refresh_token, @refresh_token_expires_at, @provider_username, now()
		)
		ON CONFLICT (user_id, provider) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			access_token_expires_at = EXCLUDED.access_token_expires_at,
			refresh_token = EXCLUDED.refresh_token,
			refresh_token_expires_at = EXCLUDED.refresh_token_expires_at,
			provider_username = COALESCE(NULLIF(EXCLUDED.provider_username, ''), provider_tokens.provider_username),
			updated_at = now()`

	queryUpdateToken = `
		UPDATE provider_tokens SET
			access_token = @access_token,
			access_token_expires_at = @access_token_expires_at,
			refresh_token = @refresh_token,
			refresh_token_expires_at = @refresh_token_expires_at,
			updated_at = now()
		WHERE user_id = @user_id AND provider = @provider`

	queryDeleteToken = `
		DELETE FROM provider_tokens
		WHERE user_id = $1 AND provider = $2`
)

// Price alert queries.
const (
	alertColumns = `id, user_id, item_id, item_name, direction, target_price,
	current_price, created_at, triggered_at`

	queryInsertAlert = `
		INSERT INTO price_alerts (user_id, item_id, item_name, direction, target_price, current_price)
		VALUES (@user_id, @item_id, @item_name, @direction, @target_price, @current_price)
		RETURNING id, created_at`

	queryGetAlert = `
		SELECT ` + alertColumns + `
		FROM price_alerts
		WHERE user_id = $1 AND id = $2`

	queryListActiveAlerts = `
		SELECT ` + alertColumns + `
		FROM price_alerts
		WHERE triggered_at IS NULL
		ORDER BY created_at`

	queryUpdateAlertPrice = `
		UPDATE price_alerts SET current_price = $2
		WHERE id = $1 AND triggered_at IS NULL`

	queryMarkAlertTriggered = `
		UPDATE price_alerts SET current_price = $2, triggered_at = $3
		WHERE id = $1 AND triggered_at IS NULL`

	queryDeleteAlert = `
		DELETE FROM price_alerts
		WHERE user_id = $1 AND id = $2`
)

// Import queries.
const (
	queryUpsertInventoryItem = `
		INSERT INTO inventory_items (
			user_id, source, source_id, name, card_number, set_name,
			grading_company, grade, condition, quantity, list_price, currency,
			image_url, source_url, needs_review, review_reasons, imported_at, updated_at
		) VALUES (
			@user_id, @source, @source_id, @name, @card_number, @set_name,
			@grading_company, @grade, @condition, @quantity, @list_price, @currency,
			@image_url, @source_url, @needs_review, @review_reasons, now(), now()
		)
		ON CONFLICT (user_id, source, source_id) DO UPDATE SET
			name = EXCLUDED.name,
			card_number = EXCLUDED.card_number,
			set_name = EXCLUDED.set_name,
			grading_company = EXCLUDED.grading_company,
			grade = EXCLUDED.grade,
			condition = EXCLUDED.condition,
			quantity = EXCLUDED.quantity,
			list_price = COALESCE(EXCLUDED.list_price, inventory_items.list_price),
			currency = EXCLUDED.currency,
			image_url = EXCLUDED.image_url,
			source_url = EXCLUDED.source_url,
			needs_review = EXCLUDED.needs_review,
			review_reasons = EXCLUDED.review_reasons,
			updated_at = now()`

	queryUpsertSale = `
		INSERT INTO sales (
			user_id, source, order_id, line_item_id, name, card_number,
			grading_company, grade, sale_price, shipping_charged, fees, quantity,
			currency, sold_at, buyer_username, needs_review, review_reasons, imported_at
		) VALUES (
			@user_id, @source, @order_id, @line_item_id, @name, @card_number,
			@grading_company, @grade, @sale_price, @shipping_charged, @fees, @quantity,
			@currency, @sold_at, @buyer_username, @needs_review, @review_reasons, now()
		)
		ON CONFLICT (user_id, source, order_id, line_item_id) DO UPDATE SET
			name = EXCLUDED.name,
			card_number = EXCLUDED.card_number,
			grading_company = EXCLUDED.grading_company,
			grade = EXCLUDED.grade,
			sale_price = EXCLUDED.sale_price,
			shipping_charged = EXCLUDED.shipping_charged,
			fees = EXCLUDED.fees,
			quantity = EXCLUDED.quantity,
			currency = EXCLUDED.currency,
			sold_at = EXCLUDED.sold_at,
			buyer_username = EXCLUDED.buyer_username,
			needs_review = EXCLUDED.needs_review,
			review_reasons = EXCLUDED.review_reasons`
)

// Preference queries.
const (
	queryGetPreference = `
		SELECT user_id, key, value, updated_at
		FROM preferences
		WHERE user_id = $1 AND key = $2`

	querySetPreference = `
		INSERT INTO preferences (user_id, key, value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id, key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = now()`

	queryDeletePreference = `
		DELETE FROM preferences
		WHERE user_id = $1 AND key = $2`

	queryListPreferences = `
		SELECT user_id, key, value, updated_at
		FROM preferences
		WHERE user_id = $1
		ORDER BY key`
)
