package printx

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type invoice struct {
	Customer string
	Total    float64
	Items    int
}

func TestForField(t *testing.T) {
	t.Run("commits a renderer for the field", func(t *testing.T) {
		p := newPrinter(t)
		rule, err := ForField[float64](p, MustFieldOf[invoice]("Total"))
		require.NoError(t, err)
		rule.Using(func(f float64) string { return fmt.Sprintf("%.2f EUR", f) })

		got, err := p.Render(invoice{Customer: "ACME", Total: 12.5, Items: 3})
		require.NoError(t, err)
		assert.Contains(t, got, "Total = 12.50 EUR\n")
	})
	t.Run("field type mismatch fails", func(t *testing.T) {
		p := newPrinter(t)
		_, err := ForField[int](p, MustFieldOf[invoice]("Total"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidSelector)
	})
	t.Run("zero field id fails", func(t *testing.T) {
		p := newPrinter(t)
		_, err := ForField[int](p, FieldID{})
		assert.ErrorIs(t, err, ErrInvalidSelector)
	})
	t.Run("two rules commit independently", func(t *testing.T) {
		// Each rule carries its own scope, so interleaving begin and
		// commit across rules cannot cross-contaminate targets.
		p := newPrinter(t)
		totalRule, err := ForField[float64](p, MustFieldOf[invoice]("Total"))
		require.NoError(t, err)
		itemsRule, err := ForField[int](p, MustFieldOf[invoice]("Items"))
		require.NoError(t, err)

		itemsRule.Using(func(n int) string { return strconv.Itoa(n) + " items" })
		totalRule.Using(func(f float64) string { return fmt.Sprintf("%.1f", f) })

		got, err := p.Render(invoice{Customer: "ACME", Total: 9.99, Items: 2})
		require.NoError(t, err)
		assert.Contains(t, got, "Total = 10.0\n")
		assert.Contains(t, got, "Items = 2 items\n")
	})
}

func TestRule_TruncateTo(t *testing.T) {
	t.Run("field scope limits that field only", func(t *testing.T) {
		type letter struct {
			Subject string
			Body    string
		}
		p := newPrinter(t)
		rule, err := ForField[string](p, MustFieldOf[letter]("Body"))
		require.NoError(t, err)
		rule.TruncateTo(4)

		got, err := p.Render(letter{Subject: "greetings", Body: "dear reader"})
		require.NoError(t, err)
		assert.Contains(t, got, "Subject = greetings\n")
		assert.Contains(t, got, "Body = dear...\n")
	})
	t.Run("type scope sets the global limit", func(t *testing.T) {
		p := newPrinter(t)
		ForType[string](p).TruncateTo(3)
		got, err := p.Render(person{Name: "Alexander", Age: 19})
		require.NoError(t, err)
		assert.Contains(t, got, "Name = Ale...\n")
	})
}

func TestRule_WithFormat(t *testing.T) {
	t.Run("field scope lands in the field registry", func(t *testing.T) {
		p := newPrinter(t)
		rule, err := ForField[int](p, MustFieldOf[invoice]("Items"))
		require.NoError(t, err)
		rule.WithFormat(func(n int) string { return "#" + strconv.Itoa(n) })

		got, err := p.Render(invoice{Customer: "ACME", Total: 1, Items: 5})
		require.NoError(t, err)
		assert.Contains(t, got, "Items = #5\n")
	})
	t.Run("type scope lands in the numeric format tier", func(t *testing.T) {
		p := newPrinter(t)
		ForType[float64](p).WithFormat(func(f float64) string {
			return strconv.FormatFloat(f, 'f', 1, 64)
		})
		got, err := p.Render(3.14159)
		require.NoError(t, err)
		assert.Equal(t, "3.1\n", got)
	})
}

func TestRule_ChainsBackToPrinter(t *testing.T) {
	p := newPrinter(t)
	q := ForType[int](p).Using(strconv.Itoa)
	assert.Same(t, p, q)
}
