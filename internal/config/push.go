package config

type PushConfig struct {
	FCM *FCMConfig `yaml:"fcm"`
}

type FCMConfig struct {
	ProjectID       string `yaml:"project_id"`
	CredentialsFile string `yaml:"credentials_file"`
	StaffTopic      string `yaml:"staff_topic"`
}

// Enabled reports whether staff push notifications can be sent.
func (p *PushConfig) Enabled() bool {
	return p.FCM != nil && p.FCM.CredentialsFile != ""
}

func loadPushConfig() *PushConfig {
	return &PushConfig{
		FCM: &FCMConfig{
			ProjectID:       getEnv("FCM_PROJECT_ID", ""),
			CredentialsFile: getEnv("FCM_CREDENTIALS_FILE", ""),
			StaffTopic:      getEnv("FCM_STAFF_TOPIC", "showroom-staff"),
		},
	}
}
