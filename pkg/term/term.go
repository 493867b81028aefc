package term

type Taxonomy string

const (
	TaxonomyCategory Taxonomy = "category"
	TaxonomyTag      Taxonomy = "post_tag"
)

type Term struct {
	Id       int64
	Name     string
	Slug     string
	Taxonomy Taxonomy
}
