package site

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestURL(t *testing.T) {
	base := "https://www.endpointmedia.co.za/"
	require.Equal(t, "https://www.endpointmedia.co.za", URL(base, "/"))
	require.Equal(t, "https://www.endpointmedia.co.za", URL(base, ""))
	require.Equal(t, "https://www.endpointmedia.co.za/pricing", URL(base, "/pricing/"))
	require.Equal(t, "https://www.endpointmedia.co.za/blog/x", URL(base, "blog/x"))
	require.Equal(t, "https://cdn.example.com/a.png", URL(base, "https://cdn.example.com/a.png"))
}

func TestIDs(t *testing.T) {
	base := "https://www.endpointmedia.co.za"
	require.Equal(t, base+"/#organization", OrganizationID(base))
	require.Equal(t, base+"/#website", WebsiteID(base))
	require.Equal(t, base+"/about/author/frank-smit#person", PersonID(base+"/"))
}
