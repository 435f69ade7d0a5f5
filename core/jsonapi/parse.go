package jsonapi

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	// ErrMalformedDocument is returned when the payload is not a structurally valid
	// JSON:API document.
	ErrMalformedDocument = errors.New("malformed json:api document")

	// ErrErrorDocument is returned when the server answered with a top-level "errors"
	// member instead of data.
	ErrErrorDocument = errors.New("json:api error document")
)

// Parse reads a JSON:API document.
func Parse(raw []byte) (*Document, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: invalid json", ErrMalformedDocument)
	}

	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: top level must be an object", ErrMalformedDocument)
	}

	if errs := root.Get("errors"); errs.IsArray() && !root.Get("data").Exists() {
		return nil, fmt.Errorf("%w: %s", ErrErrorDocument, errorTitles(errs))
	}

	data, err := parseResources(root.Get("data"), "data")
	if err != nil {
		return nil, err
	}

	included, err := parseResources(root.Get("included"), "included")
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Data:     data,
		Included: included,
		Links:    parseLinks(root.Get("links")),
		Meta:     map[string]any{},
	}
	if meta := root.Get("meta"); meta.IsObject() {
		if m, ok := meta.Value().(map[string]any); ok {
			doc.Meta = m
		}
	}

	return doc, nil
}

func parseResources(section gjson.Result, name string) ([]Resource, error) {
	switch {
	case !section.Exists() || section.Type == gjson.Null:
		return []Resource{}, nil
	case section.IsObject():
		res, err := parseResource(section)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return []Resource{res}, nil
	case section.IsArray():
		items := section.Array()
		resources := make([]Resource, 0, len(items))
		for i, item := range items {
			if !item.IsObject() {
				return nil, fmt.Errorf("%w: %s[%d] is not an object", ErrMalformedDocument, name, i)
			}
			res, err := parseResource(item)
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", name, i, err)
			}
			resources = append(resources, res)
		}
		return resources, nil
	default:
		return nil, fmt.Errorf("%w: %s must be an object, an array or null", ErrMalformedDocument, name)
	}
}

func parseResource(obj gjson.Result) (Resource, error) {
	typ := obj.Get("type")
	if typ.Type != gjson.String || typ.Str == "" {
		return Resource{}, fmt.Errorf("%w: resource without type", ErrMalformedDocument)
	}

	res := Resource{
		Type:       typ.Str,
		ID:         idString(obj.Get("id")),
		Attributes: map[string]any{},
	}

	if attrs := obj.Get("attributes"); attrs.IsObject() {
		if m, ok := attrs.Value().(map[string]any); ok {
			res.Attributes = m
		}
	}

	if rels := obj.Get("relationships"); rels.IsObject() {
		rels.ForEach(func(key, value gjson.Result) bool {
			res.Relationships = append(res.Relationships, Relationship{
				Name: key.String(),
				Data: parseLinkage(value.Get("data")),
			})
			return true
		})
	}

	return res, nil
}

// parseLinkage reads resource linkage: an array (to-many), an object (to-one) or null.
// Entries that are not objects are skipped.
func parseLinkage(data gjson.Result) []ResourceIdentifier {
	var refs []ResourceIdentifier
	appendRef := func(r gjson.Result) {
		if !r.IsObject() {
			return
		}
		refs = append(refs, ResourceIdentifier{
			Type: r.Get("type").String(),
			ID:   idString(r.Get("id")),
		})
	}

	switch {
	case data.IsArray():
		for _, item := range data.Array() {
			appendRef(item)
		}
	case data.IsObject():
		appendRef(data)
	}
	return refs
}

func idString(id gjson.Result) string {
	switch id.Type {
	case gjson.String:
		return id.Str
	case gjson.Number:
		return id.Raw
	default:
		return ""
	}
}

func parseLinks(links gjson.Result) map[string]string {
	out := map[string]string{}
	if !links.IsObject() {
		return out
	}
	links.ForEach(func(key, value gjson.Result) bool {
		switch {
		case value.Type == gjson.String:
			out[key.String()] = value.Str
		case value.IsObject():
			if href := value.Get("href"); href.Type == gjson.String {
				out[key.String()] = href.Str
			}
		}
		return true
	})
	return out
}

func errorTitles(errs gjson.Result) string {
	var titles []string
	for _, e := range errs.Array() {
		title := e.Get("title").String()
		if title == "" {
			title = e.Get("detail").String()
		}
		if status := e.Get("status").String(); status != "" {
			title = status + " " + title
		}
		titles = append(titles, strings.TrimSpace(title))
	}
	return strings.Join(titles, "; ")
}
