package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Product is a catalog entry. The catalog is global: every authenticated
// client sees the same products.
type Product struct {
	ID             int64             `json:"id" bson:"_id"`
	Name           string            `json:"name" bson:"name"`
	Brand          string            `json:"brand" bson:"brand"`
	Model          string            `json:"model" bson:"model"`
	Price          string            `json:"price" bson:"price"`
	Description    string            `json:"description,omitempty" bson:"description,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty" bson:"specifications,omitempty"`
	CreatedAt      time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at" bson:"updated_at"`
}

// FormattedPrice renders the price with a comma decimal separator, a space
// as thousands separator, and a trailing euro sign: "1199.99" → "1 199,99 €".
// An unparseable price formats as zero.
func (p *Product) FormattedPrice() string {
	f, err := strconv.ParseFloat(p.Price, 64)
	if err != nil {
		f = 0
	}

	cents := int64(math.Round(f * 100))
	negative := cents < 0
	if negative {
		cents = -cents
	}

	digits := strconv.FormatInt(cents/100, 10)
	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(d)
	}
	b.WriteByte(',')
	frac := strconv.FormatInt(cents%100, 10)
	if len(frac) == 1 {
		b.WriteByte('0')
	}
	b.WriteString(frac)
	b.WriteString(" €")
	return b.String()
}
