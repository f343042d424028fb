// =============================================================================
// Theatre Statements - XML Writer Module
// =============================================================================
//
// This module is responsible for generating the XML form of a statement from
// the aggregated performance details.
//
// XML STRUCTURE:
//
//   <?xml version="1.0" encoding="utf-8"?>
//   <Statement xmlns:xsi="..." xmlns:xsd="...">   <!-- Root element -->
//     <Customer>BigCo</Customer>
//     <Items>                                     <!-- <Items /> when empty -->
//       <Item>                                    <!-- One per performance -->
//         <AmountOwed>650</AmountOwed>
//         <EarnedCredits>25</EarnedCredits>
//         <Seats>55</Seats>
//       </Item>
//     </Items>
//     <AmountOwed>650</AmountOwed>                <!-- Statement totals -->
//     <EarnedCredits>25</EarnedCredits>
//   </Statement>
//
// AMOUNT FORMATTING:
//   Whole amounts are written without a decimal point ("20"), anything else
//   with exactly one decimal digit ("30.5"). This is deliberately coarser
//   than the two-decimal currency used by the text statement.
//
// The document body never carries timestamps, so the same input always
// produces byte-identical output.
//
// =============================================================================

package xmlwriter

import (
	"bytes"
	"encoding/xml"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ginjaninja78/theatre-statements/internal/types"
	"github.com/shopspring/decimal"
)

const (
	// XSINamespace is the XML-Schema-instance namespace declared on the root.
	XSINamespace = "http://www.w3.org/2001/XMLSchema-instance"

	// XSDNamespace is the XML-Schema namespace declared on the root.
	XSDNamespace = "http://www.w3.org/2001/XMLSchema"
)

const (
	xmlHeader = `<?xml version="1.0" encoding="utf-8"?>` + "\n"
	indent    = "  "
)

// textEscaper escapes character data the way the statement consumers expect:
// markup characters only, quotes and newlines stay literal.
var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\r", "&#xD;",
)

// =============================================================================
// XML GENERATION
// =============================================================================

// Render creates the XML statement document for customer.
//
// PARAMETERS:
//   - customer: The invoice's customer name.
//   - details: The per-performance records, in invoice order.
//   - totals: The statement totals.
//
// RETURNS:
//   - The XML document as a string, without a trailing newline.
//   - An error if marshalling fails.
func Render(customer string, details []types.PerformanceDetail, totals types.StatementTotals) (string, error) {
	var buffer bytes.Buffer
	buffer.WriteString(xmlHeader)

	doc := buildDocument(customer, details, totals)

	xmlBytes, err := xml.MarshalIndent(doc, "", indent)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal XML")
	}
	// Customer text is pre-escaped, so the literal pair only comes from an
	// empty item list.
	buffer.Write(bytes.Replace(xmlBytes, []byte("<Items></Items>"), []byte("<Items />"), 1))

	return buffer.String(), nil
}

// =============================================================================
// XML DOCUMENT BUILDING
// =============================================================================

// statementDocument is the <Statement> root element.
type statementDocument struct {
	XMLName       xml.Name   `xml:"Statement"`
	Namespaces    []xml.Attr `xml:",any,attr"`
	Customer      textNode   `xml:"Customer"`
	Items         itemList   `xml:"Items"`
	AmountOwed    string     `xml:"AmountOwed"`
	EarnedCredits int        `xml:"EarnedCredits"`
}

// textNode carries already escaped character data.
type textNode struct {
	Text string `xml:",innerxml"`
}

// itemList is the <Items> wrapper. An empty list still renders the element.
type itemList struct {
	Items []itemElement `xml:"Item"`
}

// itemElement is one <Item>. Field order fixes child order.
type itemElement struct {
	AmountOwed    string `xml:"AmountOwed"`
	EarnedCredits int    `xml:"EarnedCredits"`
	Seats         int    `xml:"Seats"`
}

// buildDocument constructs the XML document structure.
func buildDocument(customer string, details []types.PerformanceDetail, totals types.StatementTotals) *statementDocument {
	doc := &statementDocument{
		Namespaces: []xml.Attr{
			{Name: xml.Name{Local: "xmlns:xsi"}, Value: XSINamespace},
			{Name: xml.Name{Local: "xmlns:xsd"}, Value: XSDNamespace},
		},
		Customer:      textNode{Text: textEscaper.Replace(customer)},
		AmountOwed:    FormatAmount(totals.TotalAmount),
		EarnedCredits: totals.TotalCredits,
	}

	for _, d := range details {
		doc.Items.Items = append(doc.Items.Items, itemElement{
			AmountOwed:    FormatAmount(d.AmountOwed),
			EarnedCredits: d.EarnedCredits,
			Seats:         d.Seats,
		})
	}

	return doc
}

// FormatAmount renders an AmountOwed value: integer digits for whole
// amounts, otherwise one decimal digit rounded half away from zero.
func FormatAmount(amount decimal.Decimal) string {
	floor := amount.Floor()
	if amount.Equal(floor) {
		return floor.String()
	}
	return amount.StringFixed(1)
}
