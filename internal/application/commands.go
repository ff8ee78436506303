package application

type SetCredentialCommand struct {
	Token string
}

type InitSettingsCommand struct {
	Force bool
}
