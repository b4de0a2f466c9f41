package scannerRepository

const (
	queryCreateScan = `
		INSERT INTO scanned_objects (id, user_id, object_name, object_type, image_url, confidence_score, created_at)
		VALUES (:id, :user_id, :object_name, :object_type, :image_url, :confidence_score, :created_at)
	`

	queryGetScansByUser = `
		SELECT id, user_id, object_name, object_type, image_url, confidence_score, created_at
		FROM scanned_objects
		WHERE user_id = :user_id
		ORDER BY created_at DESC
		LIMIT :limit
	`

	queryCountScansByUser = `
		SELECT COUNT(*) FROM scanned_objects WHERE user_id = :user_id
	`

	queryDeleteScansByUser = `
		DELETE FROM scanned_objects WHERE user_id = :user_id
	`

	queryCreateCommand = `
		INSERT INTO voice_commands (id, user_id, command_text, action_result, executed_at)
		VALUES (:id, :user_id, :command_text, :action_result, :executed_at)
	`

	queryGetCommandsByUser = `
		SELECT id, user_id, command_text, action_result, executed_at
		FROM voice_commands
		WHERE user_id = :user_id
		ORDER BY executed_at DESC
		LIMIT :limit
	`

	queryCountCommandsByUser = `
		SELECT COUNT(*) FROM voice_commands WHERE user_id = :user_id
	`

	queryDeleteCommandsByUser = `
		DELETE FROM voice_commands WHERE user_id = :user_id
	`
)
