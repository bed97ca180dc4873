package repositories

const (
	queryUpsertMetric = `
		INSERT INTO metrics (key, name, value_type, best_value, worst_value)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (key) DO UPDATE
		SET name = EXCLUDED.name,
			value_type = EXCLUDED.value_type,
			best_value = EXCLUDED.best_value,
			worst_value = EXCLUDED.worst_value
	`

	querySelectMetric = `
		SELECT key, name, value_type, best_value, worst_value FROM metrics WHERE key = $1
	`

	querySelectMetrics = `
		SELECT key, name, value_type, best_value, worst_value FROM metrics ORDER BY key
	`

	queryUpsertMeasure = `
		INSERT INTO measures (id, metric_key, component, value, text_value, alert_status,
			variation_1, variation_2, variation_3, variation_4, variation_5, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (metric_key, component) DO UPDATE
		SET value = EXCLUDED.value,
			text_value = EXCLUDED.text_value,
			alert_status = EXCLUDED.alert_status,
			variation_1 = EXCLUDED.variation_1,
			variation_2 = EXCLUDED.variation_2,
			variation_3 = EXCLUDED.variation_3,
			variation_4 = EXCLUDED.variation_4,
			variation_5 = EXCLUDED.variation_5,
			updated_at = EXCLUDED.updated_at
	`

	selectMeasureColumns = `
		SELECT m.key, m.name, m.value_type, m.best_value, m.worst_value,
			ms.component, ms.value, ms.text_value, ms.alert_status,
			ms.variation_1, ms.variation_2, ms.variation_3, ms.variation_4, ms.variation_5,
			ms.updated_at
		FROM measures ms
		JOIN metrics m ON m.key = ms.metric_key
	`

	querySelectMeasure = selectMeasureColumns + `
		WHERE ms.metric_key = $1 AND ms.component = $2
	`

	querySelectAllMeasures = selectMeasureColumns + `
		ORDER BY ms.metric_key, ms.component
	`
)
