package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	c1, c2, c3, c4 := testParties()
	b, err := New(c1, c2, c3, c4)
	require.NoError(t, err)
	return b
}

func TestAppendPayloads_Order(t *testing.T) {
	b := newTestBuilder(t)

	err := b.AppendPayloads([]Payload{
		{Href: "cid:1", MimeType: "application/pdf"},
		{Href: "cid:2", MimeType: "text/xml", CompressionType: "application/gzip"},
	})
	require.NoError(t, err)

	parts := findOne(t, b.Element(), "./eb3:UserMessage/eb3:PayloadInfo").ChildElements()
	require.Len(t, parts, 2)

	assert.Equal(t, "eb3:PartInfo", parts[0].FullTag())
	assert.Equal(t, "cid:1", parts[0].SelectAttrValue("href", ""))
	firstProps := findOne(t, parts[0], "./eb3:PartProperties").ChildElements()
	require.Len(t, firstProps, 1)
	assert.Equal(t, "MimeType", firstProps[0].SelectAttrValue("name", ""))
	assert.Equal(t, "application/pdf", firstProps[0].Text())

	assert.Equal(t, "cid:2", parts[1].SelectAttrValue("href", ""))
	secondProps := findOne(t, parts[1], "./eb3:PartProperties").ChildElements()
	require.Len(t, secondProps, 2)
	assert.Equal(t, "MimeType", secondProps[0].SelectAttrValue("name", ""))
	assert.Equal(t, "text/xml", secondProps[0].Text())
	assert.Equal(t, "CompressionType", secondProps[1].SelectAttrValue("name", ""))
	assert.Equal(t, "application/gzip", secondProps[1].Text())
}

func TestAppendPayloads_Accumulate(t *testing.T) {
	b := newTestBuilder(t)

	require.NoError(t, b.AppendPayloads([]Payload{{Href: "cid:1", MimeType: "text/plain"}}))
	require.NoError(t, b.AppendPayloads([]Payload{
		{Href: "cid:2", MimeType: "application/json"},
		{Href: "cid:3", MimeType: "application/pdf"},
	}))

	parts := findOne(t, b.Element(), "./eb3:UserMessage/eb3:PayloadInfo").ChildElements()
	require.Len(t, parts, 3)
	assert.Equal(t, "cid:1", parts[0].SelectAttrValue("href", ""))
	assert.Equal(t, "cid:2", parts[1].SelectAttrValue("href", ""))
	assert.Equal(t, "cid:3", parts[2].SelectAttrValue("href", ""))
}

func TestAppendPayloads_MissingFieldFailFast(t *testing.T) {
	b := newTestBuilder(t)
	require.NoError(t, b.AppendPayloads([]Payload{{Href: "cid:0", MimeType: "text/plain"}}))

	t.Run("missing mimetype", func(t *testing.T) {
		err := b.AppendPayloads([]Payload{
			{Href: "cid:1", MimeType: "application/pdf"},
			{Href: "cid:2"},
		})
		require.ErrorIs(t, err, ErrMissingField)

		// The valid first entry must not have been appended either.
		parts := findOne(t, b.Element(), "./eb3:UserMessage/eb3:PayloadInfo").ChildElements()
		assert.Len(t, parts, 1)
	})

	t.Run("missing href", func(t *testing.T) {
		err := b.AppendPayloads([]Payload{{MimeType: "application/pdf"}})
		require.ErrorIs(t, err, ErrMissingField)

		parts := findOne(t, b.Element(), "./eb3:UserMessage/eb3:PayloadInfo").ChildElements()
		assert.Len(t, parts, 1)
	})
}

func TestPayloadsFromMetadata(t *testing.T) {
	payloads, err := PayloadsFromMetadata([]map[string]string{
		{"href": "cid:order", "mimetype": "application/xml"},
		{"href": "cid:invoice", "mimetype": "application/pdf", "CompressionType": "application/gzip"},
	})
	require.NoError(t, err)
	require.Len(t, payloads, 2)
	assert.Equal(t, Payload{Href: "cid:order", MimeType: "application/xml"}, payloads[0])
	assert.Equal(t, Payload{
		Href:            "cid:invoice",
		MimeType:        "application/pdf",
		CompressionType: "application/gzip",
	}, payloads[1])
}

func TestPayloadsFromMetadata_MissingKey(t *testing.T) {
	t.Run("missing mimetype", func(t *testing.T) {
		_, err := PayloadsFromMetadata([]map[string]string{{"href": "cid:1"}})
		require.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("missing href", func(t *testing.T) {
		_, err := PayloadsFromMetadata([]map[string]string{{"mimetype": "text/xml"}})
		require.ErrorIs(t, err, ErrMissingField)
	})
}
