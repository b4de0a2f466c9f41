package insightsRepository

const (
	queryGetPreferences = `
		SELECT user_id, voice_enabled, voice_language, theme, auto_speak, updated_at
		FROM user_preferences
		WHERE user_id = :user_id
	`

	queryUpsertPreferences = `
		INSERT INTO user_preferences (user_id, voice_enabled, voice_language, theme, auto_speak, updated_at)
		VALUES (:user_id, :voice_enabled, :voice_language, :theme, :auto_speak, :updated_at)
		ON CONFLICT (user_id) DO UPDATE SET
			voice_enabled = EXCLUDED.voice_enabled,
			voice_language = EXCLUDED.voice_language,
			theme = EXCLUDED.theme,
			auto_speak = EXCLUDED.auto_speak,
			updated_at = EXCLUDED.updated_at
	`
)
