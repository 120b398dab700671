package header

import "fmt"

// Payload describes one attachment referenced from PayloadInfo.
// Href and MimeType are required; CompressionType is emitted as a
// PartProperties Property only when non-empty.
type Payload struct {
	Href            string
	MimeType        string
	CompressionType string
}

func (p Payload) validate() error {
	if p.Href == "" {
		return fmt.Errorf("%w: href", ErrMissingField)
	}
	if p.MimeType == "" {
		return fmt.Errorf("%w: mimetype", ErrMissingField)
	}
	return nil
}

// AppendPayloads appends one PartInfo per payload to PayloadInfo, in
// input order. Parts accumulate across calls; there is no removal.
//
// The whole batch is validated before the tree is touched, so a call
// failing with ErrMissingField leaves PayloadInfo unchanged.
func (b *Builder) AppendPayloads(payloads []Payload) error {
	for _, p := range payloads {
		if err := p.validate(); err != nil {
			return err
		}
	}

	for _, p := range payloads {
		part := b.payloadInfo.CreateElement("eb3:PartInfo")
		part.CreateAttr("href", p.Href)
		props := part.CreateElement("eb3:PartProperties")
		mime := props.CreateElement("eb3:Property")
		mime.CreateAttr("name", "MimeType")
		mime.SetText(p.MimeType)
		if p.CompressionType != "" {
			comp := props.CreateElement("eb3:Property")
			comp.CreateAttr("name", "CompressionType")
			comp.SetText(p.CompressionType)
		}
	}
	return nil
}

// PayloadsFromMetadata converts descriptor maps, as produced by MIME
// attachment handling, into typed Payload values. Recognized keys are
// "href", "mimetype" and "CompressionType"; the first two are
// required and a missing or empty one fails the whole conversion with
// ErrMissingField.
func PayloadsFromMetadata(parts []map[string]string) ([]Payload, error) {
	payloads := make([]Payload, 0, len(parts))
	for _, part := range parts {
		p := Payload{
			Href:            part["href"],
			MimeType:        part["mimetype"],
			CompressionType: part["CompressionType"],
		}
		if err := p.validate(); err != nil {
			return nil, err
		}
		payloads = append(payloads, p)
	}
	return payloads, nil
}
