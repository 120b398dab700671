package header

// Namespace URIs declared on the eb3:Messaging root element.
const (
	NsQuery  = "urn:oasis:names:tc:ebxml-regrep:xsd:query:4.0"
	NsRS     = "urn:oasis:names:tc:ebxml-regrep:xsd:rs:4.0"
	NsRIM    = "urn:oasis:names:tc:ebxml-regrep:xsd:rim:4.0"
	NsXSI    = "http://www.w3.org/2001/XMLSchema-instance"
	NsSDG    = "http://data.europa.eu/sdg#"
	NsSOAP12 = "http://www.w3.org/2003/05/soap-envelope"
	NsEU     = "http://eu.domibus.wsplugin/"
	NsEbMS3  = "http://docs.oasis-open.org/ebxml-msg/ebms/v3.0/ns/core/200704/"
)

// Default eDelivery collaboration values, used when the matching
// option is not supplied.
const (
	DefaultService     = "http://docs.oasis-open.org/ebxml-msg/as4/200902/service"
	DefaultServiceType = "urn:oasis:names:tc:ebcore:ebrs:ebms:binding:1.0"
	DefaultAction      = "http://docs.oasis-open.org/ebxml-msg/as4/200902/action"
	DefaultRole        = "http://sdg.europa.eu/edelivery/gateway"
)

// namespacePrefixes lists the prefix declarations emitted on the root
// element, in declaration order. All are declared up front regardless
// of use in the body; the consuming gateway expects the full set.
var namespacePrefixes = []struct {
	prefix string
	uri    string
}{
	{"query", NsQuery},
	{"rs", NsRS},
	{"rim", NsRIM},
	{"xsi", NsXSI},
	{"sdg", NsSDG},
	{"s12", NsSOAP12},
	{"eu", NsEU},
	{"eb3", NsEbMS3},
}
