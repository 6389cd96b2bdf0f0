package czml

import "encoding/base64"

// URIResolver maps a resource URI to the URI written to the document.
type URIResolver interface {
	ResolveURI(uri string) string
}

// URIResolverFunc adapts a function to URIResolver.
type URIResolverFunc func(uri string) string

// ResolveURI calls f(uri).
func (f URIResolverFunc) ResolveURI(uri string) string { return f(uri) }

// PassThroughURIResolver writes URIs unchanged.
var PassThroughURIResolver URIResolver = URIResolverFunc(func(uri string) string { return uri })

// DataURI embeds data in a base64 data URI of the given MIME type.
func DataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// CachingURIResolver resolves each distinct URI once through Next and
// reuses the result afterwards.
type CachingURIResolver struct {
	Next  URIResolver
	cache map[string]string
}

// ResolveURI implements URIResolver.
func (c *CachingURIResolver) ResolveURI(uri string) string {
	if v, ok := c.cache[uri]; ok {
		return v
	}
	if c.cache == nil {
		c.cache = make(map[string]string)
	}
	v := c.Next.ResolveURI(uri)
	c.cache[uri] = v
	return v
}
