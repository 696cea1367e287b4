package view

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const rupeeSign = "₹"

var indianEnglish = language.MustParse("en-IN")

// FormatPrice renders paise as rupees with Indian digit grouping,
// e.g. 150000 -> "₹ 1,500" and 12345650 -> "₹ 1,23,456.5".
func FormatPrice(paise int64) string {
	rupees, rest := paise/100, paise%100

	var b strings.Builder
	b.WriteString(rupeeSign)
	b.WriteByte(' ')
	b.WriteString(message.NewPrinter(indianEnglish).Sprintf("%d", rupees))
	if rest != 0 {
		b.WriteByte('.')
		b.WriteString(strings.TrimRight(fmt.Sprintf("%02d", rest), "0"))
	}
	return b.String()
}
