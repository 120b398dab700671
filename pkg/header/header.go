package header

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/google/uuid"
)

// Party identifies a participant in the four-corner exchange as an
// (identifier, identifier-type) pair. The type is emitted as the
// matching type attribute and is not validated; an empty type produces
// an empty attribute, matching gateway expectations for unregistered
// party id schemes.
type Party struct {
	ID   string
	Type string
}

// Builder owns an eb3:Messaging header tree built once at
// construction. After construction the only mutation is
// AppendPayloads; party and collaboration fields are fixed.
//
// A Builder is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access themselves.
type Builder struct {
	doc         *etree.Document
	payloadInfo *etree.Element
}

// Option configures an optional collaboration field on a Builder.
type Option func(*settings)

type settings struct {
	conversationID string
	service        string
	serviceType    string
	action         string
	role           string
}

// WithConversationID sets the conversation id correlating related
// messages. When not given, a fresh random UUID is generated for each
// constructed Builder.
func WithConversationID(id string) Option {
	return func(s *settings) { s.conversationID = id }
}

// WithService sets the Service element text.
func WithService(service string) Option {
	return func(s *settings) { s.service = service }
}

// WithServiceType sets the Service element's type attribute.
func WithServiceType(serviceType string) Option {
	return func(s *settings) { s.serviceType = serviceType }
}

// WithAction sets the Action element text.
func WithAction(action string) Option {
	return func(s *settings) { s.action = action }
}

// WithRole sets the Role emitted for both the From and To parties.
func WithRole(role string) Option {
	return func(s *settings) { s.role = role }
}

// New builds the Messaging header for a four-corner eDelivery
// exchange: originalSender and finalRecipient are the business
// endpoints (emitted as MessageProperties), from and to are the
// sending and receiving access points (emitted as PartyInfo).
//
// All four party id values are mandatory; an empty one fails with
// ErrMissingPartyID and no Builder is returned. Party types and the
// optional fields are accepted as given, empty strings included.
func New(originalSender, from, to, finalRecipient Party, opts ...Option) (*Builder, error) {
	corners := []struct {
		name  string
		party Party
	}{
		{"originalSender", originalSender},
		{"from", from},
		{"to", to},
		{"finalRecipient", finalRecipient},
	}
	for _, c := range corners {
		if c.party.ID == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingPartyID, c.name)
		}
	}

	s := settings{
		conversationID: uuid.NewString(),
		service:        DefaultService,
		serviceType:    DefaultServiceType,
		action:         DefaultAction,
		role:           DefaultRole,
	}
	for _, opt := range opts {
		opt(&s)
	}

	doc := etree.NewDocument()
	root := doc.CreateElement("eb3:Messaging")
	for _, ns := range namespacePrefixes {
		root.CreateAttr("xmlns:"+ns.prefix, ns.uri)
	}

	userMsg := root.CreateElement("eb3:UserMessage")

	partyInfo := userMsg.CreateElement("eb3:PartyInfo")
	fromEl := partyInfo.CreateElement("eb3:From")
	fromID := fromEl.CreateElement("eb3:PartyId")
	fromID.CreateAttr("type", from.Type)
	fromID.SetText(from.ID)
	fromEl.CreateElement("eb3:Role").SetText(s.role)

	toEl := partyInfo.CreateElement("eb3:To")
	toID := toEl.CreateElement("eb3:PartyId")
	toID.CreateAttr("type", to.Type)
	toID.SetText(to.ID)
	toEl.CreateElement("eb3:Role").SetText(s.role)

	collab := userMsg.CreateElement("eb3:CollaborationInfo")
	service := collab.CreateElement("eb3:Service")
	service.CreateAttr("type", s.serviceType)
	service.SetText(s.service)
	collab.CreateElement("eb3:Action").SetText(s.action)
	collab.CreateElement("eb3:ConversationId").SetText(s.conversationID)

	props := userMsg.CreateElement("eb3:MessageProperties")
	sender := props.CreateElement("eb3:Property")
	sender.CreateAttr("name", "originalSender")
	sender.CreateAttr("type", originalSender.Type)
	sender.SetText(originalSender.ID)
	recipient := props.CreateElement("eb3:Property")
	recipient.CreateAttr("name", "finalRecipient")
	recipient.CreateAttr("type", finalRecipient.Type)
	recipient.SetText(finalRecipient.ID)

	payloadInfo := userMsg.CreateElement("eb3:PayloadInfo")

	return &Builder{doc: doc, payloadInfo: payloadInfo}, nil
}

// Element returns the live eb3:Messaging root, for callers that embed
// the header into a SOAP envelope. Mutating the returned tree directly
// bypasses the Builder's append-only contract.
func (b *Builder) Element() *etree.Element {
	return b.doc.Root()
}

// XML serializes the header with two-space indentation. Indentation is
// applied to a copy of the tree, so consecutive calls with no appends
// in between produce byte-identical output.
func (b *Builder) XML() ([]byte, error) {
	doc := b.doc.Copy()
	doc.Indent(2)
	return doc.WriteToBytes()
}
