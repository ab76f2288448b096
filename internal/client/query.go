package client

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/retznutz/lulu-client/internal/constants"
	"github.com/retznutz/lulu-client/pkg/lulu"
)

// query builds a literal query string in insertion order.
type query struct {
	parts []string
}

func newQuery() *query {
	return &query{}
}

// pageQuery starts a query with page and size, defaulting both when opts is nil.
func pageQuery(opts *lulu.ListOptions) *query {
	page, size := constants.DefaultPage, constants.DefaultPageSize
	if opts != nil {
		page, size = opts.Page, opts.Size
	}

	return newQuery().addInt("page", page).addInt("size", size)
}

func (q *query) add(key, value string) *query {
	q.parts = append(q.parts, key+"="+escape(value))

	return q
}

func (q *query) addInt(key string, value int) *query {
	return q.add(key, strconv.Itoa(value))
}

func (q *query) addBool(key string, value bool) *query {
	return q.add(key, strconv.FormatBool(value))
}

// addText appends an enum or other text value in its wire form.
func (q *query) addText(key string, value interface{ MarshalText() ([]byte, error) }) *query {
	text, err := value.MarshalText()
	if err != nil {
		return q
	}

	return q.add(key, string(text))
}

// String renders "?k=v&..." or "" when empty.
func (q *query) String() string {
	if len(q.parts) == 0 {
		return ""
	}

	return "?" + strings.Join(q.parts, "&")
}

// escape percent-encodes a query value, using %20 for spaces.
func escape(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}

// resourcePath joins a collection path and an escaped identifier.
func resourcePath(base, id string, suffix ...string) string {
	path := base + "/" + url.PathEscape(id)
	for _, part := range suffix {
		path += "/" + part
	}

	return path
}
