package post

type FindOptions struct {
	Ids    []int64
	Status *Status
}

type CreateOptions struct {
	AuthorId int64
	Title    string
	Content  string
	Status   Status
}
