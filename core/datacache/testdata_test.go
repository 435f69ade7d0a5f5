package datacache

import (
	"testing"

	"datacache/core/jsonapi"

	"github.com/stretchr/testify/require"
)

func contentAttrs(name string) map[string]any {
	return map[string]any{
		"uri":          "rw://betamax/contents/" + name,
		"name":         name,
		"released_at":  "2021-04-02T13:00:00Z",
		"content_type": "screencast",
	}
}

func ref(typ, id string) jsonapi.ResourceIdentifier {
	return jsonapi.ResourceIdentifier{Type: typ, ID: id}
}

func block(name string, refs ...jsonapi.ResourceIdentifier) jsonapi.Relationship {
	return jsonapi.Relationship{Name: name, Data: refs}
}

func content(id string, blocks ...jsonapi.Relationship) jsonapi.Resource {
	return jsonapi.Resource{Type: "contents", ID: id, Attributes: contentAttrs("content-" + id), Relationships: blocks}
}

func category(id string) jsonapi.Resource {
	return jsonapi.Resource{Type: "categories", ID: id, Attributes: map[string]any{
		"name": "category-" + id,
		"uri":  "rw://betamax/categories/" + id,
	}}
}

func domain(id string) jsonapi.Resource {
	return jsonapi.Resource{Type: "domains", ID: id, Attributes: map[string]any{
		"name":  "domain-" + id,
		"slug":  "domain-" + id,
		"level": "production",
	}}
}

func mustParse(t *testing.T, body string) *jsonapi.Document {
	t.Helper()
	doc, err := jsonapi.Parse([]byte(body))
	require.NoError(t, err)
	return doc
}
