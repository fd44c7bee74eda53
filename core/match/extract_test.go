package match

import (
	"reflect"
	"testing"
)

func TestExtractCustomersMixedQuoting(t *testing.T) {
	query := `project = PW AND "customers[select list (multiple choices)]" IN ("JCB UK", Goupil, REE) ORDER BY created`
	got := ExtractCustomers(query)
	if want := []string{"JCB UK", "Goupil", "REE"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("customers = %v, want %v", got, want)
	}
}

func TestExtractCustomersQuotedParenthesis(t *testing.T) {
	query := `customers IN ("Noam (Segula)", "Convergence")`
	got := ExtractCustomers(query)
	if want := []string{"Noam (Segula)", "Convergence"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("customers = %v, want %v", got, want)
	}
}

func TestExtractCustomersCaseInsensitiveKeyword(t *testing.T) {
	got := ExtractCustomers(`Customers in (Alpha, Beta)`)
	if want := []string{"Alpha", "Beta"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("customers = %v, want %v", got, want)
	}
}

func TestExtractCustomersPreservesCasingAndSpacing(t *testing.T) {
	got := ExtractCustomers(`customers IN ("  JCB   UK  ", gOuPiL)`)
	if len(got) != 2 {
		t.Fatalf("customers = %v", got)
	}
	if got[0] != "JCB   UK" {
		t.Fatalf("inner spacing lost: %q", got[0])
	}
	if got[1] != "gOuPiL" {
		t.Fatalf("casing changed: %q", got[1])
	}
}

func TestExtractCustomersDropsNoiseTokens(t *testing.T) {
	got := ExtractCustomers(`customers IN (Alpha, AND, or, Beta, "")`)
	if want := []string{"Alpha", "Beta"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("customers = %v, want %v", got, want)
	}
}

func TestExtractCustomersMalformed(t *testing.T) {
	for _, query := range []string{
		"",
		"project = PW ORDER BY created",
		"customers IN Alpha, Beta",
		`customers IN ("Alpha", "Beta"`,
	} {
		if got := ExtractCustomers(query); len(got) != 0 {
			t.Fatalf("query %q: got %v, want none", query, got)
		}
	}
}
