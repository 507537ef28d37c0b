package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupTypeCaseInsensitive(t *testing.T) {
	code, err := LookupType("aaaa")
	require.NoError(t, err)
	require.Equal(t, uint16(TypeAAAA), code)

	code, err = LookupType("AAAA")
	require.NoError(t, err)
	require.Equal(t, uint16(TypeAAAA), code)
}

func TestLookupTypeUnknown(t *testing.T) {
	_, err := LookupType("BADTYPE")
	require.ErrorIs(t, err, ErrUnknownRecordType)
}

func TestLookupTypeNumericForm(t *testing.T) {
	code, err := LookupType("TYPE28")
	require.NoError(t, err)
	require.Equal(t, uint16(28), code)
}

func TestTypeNameRoundTrip(t *testing.T) {
	require.Equal(t, "A", TypeName(TypeA))
	require.Equal(t, "AAAA", TypeName(TypeAAAA))
	require.Equal(t, "TYPE9999", TypeName(9999))
}

func TestLookupClass(t *testing.T) {
	code, err := LookupClass("in")
	require.NoError(t, err)
	require.Equal(t, uint16(ClassIN), code)

	_, err = LookupClass("XX")
	require.ErrorIs(t, err, ErrUnknownClass)
}

func TestClassNameUnknownNumeric(t *testing.T) {
	require.Equal(t, "CLASS7", ClassName(7))
}

func TestIsRegisteredTypeAndClass(t *testing.T) {
	require.True(t, IsRegisteredType("mx"))
	require.False(t, IsRegisteredType("example.net"))
	require.True(t, IsRegisteredClass("CH"))
	require.False(t, IsRegisteredClass("example.net"))
}

func TestListTypesSortedByCode(t *testing.T) {
	entries := ListTypes()
	require.NotEmpty(t, entries)
	for i := 1; i < len(entries); i++ {
		require.Less(t, entries[i-1].Code, entries[i].Code)
	}
}
