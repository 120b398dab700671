// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package goebmsheader provides construction of ebMS3/AS4 Messaging
headers for eDelivery document exchange.

# Overview

go-ebms-header builds the fixed-shape ebXML Messaging header used by
eDelivery gateways in the four-corner model: original sender (C1),
sending access point (C2), receiving access point (C3) and final
recipient (C4). It produces the header element and its serialized XML;
embedding the header in a SOAP envelope, MIME packaging, signing and
transport are left to the consuming message-assembly layer.

# Package Structure

	github.com/sirosfoundation/go-ebms-header/pkg/header - Messaging header builder

# Quick Start

	import "github.com/sirosfoundation/go-ebms-header/pkg/header"

	b, err := header.New(
	    header.Party{ID: "9915:c1", Type: "urn:oasis:names:tc:ebcore:partyid-type:iso6523"},
	    header.Party{ID: "c2-ap", Type: "urn:oasis:names:tc:ebcore:partyid-type:unregistered"},
	    header.Party{ID: "c3-ap", Type: "urn:oasis:names:tc:ebcore:partyid-type:unregistered"},
	    header.Party{ID: "9915:c4", Type: "urn:oasis:names:tc:ebcore:partyid-type:iso6523"},
	)
	if err != nil {
	    // a mandatory party identifier was missing
	}

	err = b.AppendPayloads([]header.Payload{
	    {Href: "cid:document", MimeType: "application/xml"},
	})

	xml, err := b.XML()

# References

  - OASIS ebMS 3.0 Core: https://docs.oasis-open.org/ebxml-msg/ebms/v3.0/core/os/
  - eDelivery: https://ec.europa.eu/digital-building-blocks/sites/spaces/DIGITAL/

# License

BSD-2-Clause License
*/
package goebmsheader
