package sqlgen

import "testing"

func TestQuoteLiteral(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Escolher combo", "'Escolher combo'"},
		{"empty", "", "''"},
		{"single quote doubled", "Pedido d'água", "'Pedido d''água'"},
		{"only quotes", "''", "''''''"},
		{"decomposed accent composed", "Pe\u0301rez", "'P\u00e9rez'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuoteLiteral(tt.input); got != tt.want {
				t.Errorf("QuoteLiteral(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestQuoteNLiteral(t *testing.T) {
	if got := QuoteNLiteral("Pedido d'água"); got != "N'Pedido d''água'" {
		t.Errorf("QuoteNLiteral() = %q", got)
	}
}

func TestRawLiteral(t *testing.T) {
	if got := rawLiteral("d'água"); got != "'d'água'" {
		t.Errorf("rawLiteral() = %q", got)
	}
}

func TestQuoteIdent(t *testing.T) {
	if got := QuoteIdent("Resource"); got != "[Resource]" {
		t.Errorf("QuoteIdent() = %q", got)
	}
	if got := QuoteIdent("odd]name"); got != "[odd]]name]" {
		t.Errorf("QuoteIdent() = %q", got)
	}
}

func TestSchemaTable(t *testing.T) {
	if got := DefaultSchema().Table(TableLocalizedResource); got != "[ACS].[IIS].[LocalizedResource]" {
		t.Errorf("Table() = %q", got)
	}
}
