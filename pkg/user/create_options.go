package user

type CreateOptions struct {
	Login       string
	Email       string
	DisplayName string
	Password    string
}
