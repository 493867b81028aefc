package term

type FindOptions struct {
	Ids      []int64
	Taxonomy *Taxonomy
}

type CreateOptions struct {
	Name     string
	Slug     string
	Taxonomy Taxonomy
}
