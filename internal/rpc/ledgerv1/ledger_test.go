package ledgerv1

import (
	"os"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const protoFile = "../../../proto/ledger/v1/ledger.proto"

var (
	messageRe = regexp.MustCompile(`(?ms)^message (\w+) \{(.*?)^\}`)
	fieldRe   = regexp.MustCompile(`(?m)^\s*(?:repeated |optional )?[\w.]+ (\w+) = \d+;`)
)

// lowerCamel converts a proto field name to its JSON name.
func lowerCamel(name string) string {
	parts := strings.Split(name, "_")
	for i := 1; i < len(parts); i++ {
		parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
	}
	return strings.Join(parts, "")
}

func jsonNames(t reflect.Type) []string {
	var names []string
	for i := 0; i < t.NumField(); i++ {
		tag, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		names = append(names, tag)
	}
	sort.Strings(names)
	return names
}

func TestMessagesMatchProto(t *testing.T) {
	src, err := os.ReadFile(protoFile)
	require.NoError(t, err)

	types := map[string]reflect.Type{
		"Expense":                      reflect.TypeOf(Expense{}),
		"Balance":                      reflect.TypeOf(Balance{}),
		"Settlement":                   reflect.TypeOf(Settlement{}),
		"CategoryTotal":                reflect.TypeOf(CategoryTotal{}),
		"MonthlyTotal":                 reflect.TypeOf(MonthlyTotal{}),
		"ListExpensesResponse":         reflect.TypeOf(ListExpensesResponse{}),
		"AddExpenseRequest":            reflect.TypeOf(AddExpenseRequest{}),
		"AddExpenseResponse":           reflect.TypeOf(AddExpenseResponse{}),
		"UpdateExpenseRequest":         reflect.TypeOf(UpdateExpenseRequest{}),
		"UpdateExpenseResponse":        reflect.TypeOf(UpdateExpenseResponse{}),
		"DeleteExpenseRequest":         reflect.TypeOf(DeleteExpenseRequest{}),
		"ListPeopleResponse":           reflect.TypeOf(ListPeopleResponse{}),
		"GetBalancesResponse":          reflect.TypeOf(GetBalancesResponse{}),
		"GetSettlementsResponse":       reflect.TypeOf(GetSettlementsResponse{}),
		"GetCategoryBreakdownResponse": reflect.TypeOf(GetCategoryBreakdownResponse{}),
		"GetMonthlySpendingResponse":   reflect.TypeOf(GetMonthlySpendingResponse{}),
		"ListCategoriesResponse":       reflect.TypeOf(ListCategoriesResponse{}),
	}

	messages := messageRe.FindAllStringSubmatch(string(src), -1)
	require.Len(t, messages, len(types), "every message needs a Go type")

	for _, m := range messages {
		name, body := m[1], m[2]
		t.Run(name, func(t *testing.T) {
			typ, ok := types[name]
			require.True(t, ok, "no Go type for message %s", name)

			var want []string
			for _, f := range fieldRe.FindAllStringSubmatch(body, -1) {
				want = append(want, lowerCamel(f[1]))
			}
			sort.Strings(want)
			assert.Equal(t, want, jsonNames(typ))
		})
	}
}
