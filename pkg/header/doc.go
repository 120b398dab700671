// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package header builds the ebMS3 Messaging header used in eDelivery
four-corner document exchange.

The header has a fixed shape defined by the OASIS ebXML Messaging
Services v3.0 specification: a UserMessage carrying PartyInfo (the
sending and receiving access points), CollaborationInfo (service,
action and conversation id), MessageProperties (the originalSender and
finalRecipient business endpoints) and PayloadInfo (per-attachment
metadata). This package constructs that tree, lets the caller append
payload descriptors afterwards, and serializes the result. It does not
send anything: MIME packaging, signing and transport belong to the
message-assembly layer consuming the produced element.

# Building a Header

	b, err := header.New(
	    header.Party{ID: "9915:sender", Type: "urn:oasis:names:tc:ebcore:partyid-type:iso6523"},
	    header.Party{ID: "c2-gateway", Type: "urn:oasis:names:tc:ebcore:partyid-type:unregistered"},
	    header.Party{ID: "c3-gateway", Type: "urn:oasis:names:tc:ebcore:partyid-type:unregistered"},
	    header.Party{ID: "9915:recipient", Type: "urn:oasis:names:tc:ebcore:partyid-type:iso6523"},
	    header.WithConversationID("conv-123"),
	)

Service, action, role and the Service type attribute default to the
eDelivery gateway values and can be overridden with options. When no
conversation id is given, each constructed Builder gets a fresh random
UUID.

# Payloads

	err = b.AppendPayloads([]header.Payload{
	    {Href: "cid:order", MimeType: "application/xml"},
	    {Href: "cid:invoice", MimeType: "application/pdf", CompressionType: "application/gzip"},
	})

	xml, err := b.XML()

# Concurrency

A Builder performs no internal locking. Construction and appends are
plain in-memory mutations; callers sharing a Builder across goroutines
must serialize access externally.

# References

  - OASIS ebMS 3.0 Core: https://docs.oasis-open.org/ebxml-msg/ebms/v3.0/core/os/
  - eDelivery AS4 profile: https://ec.europa.eu/digital-building-blocks/sites/spaces/DIGITAL/pages/467109022/eDelivery+AS4
*/
package header
