package user

type FindOptions struct {
	Ids []int64
}

type FindOneOptions struct {
	LoginOption *LoginOption
}

func (options *FindOneOptions) Validate() error {
	if options == nil || options.LoginOption == nil {
		return ErrOneOptionRequired
	}
	return options.LoginOption.Validate()
}

type LoginOption struct {
	Login string
}

func (option *LoginOption) Validate() error {
	if len(option.Login) == 0 {
		return ErrLoginRequired
	}
	return nil
}
