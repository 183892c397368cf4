package mason

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddError(t *testing.T) {
	t.Parallel()

	d := New(map[string]any{"name": "ignored"})
	d.AddError("Not found", "no such event", "check the name")

	require.True(t, d.HasError())
	errBody, ok := d[ErrorKey].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Not found", errBody["@message"])
	assert.Equal(t, []string{"no such event", "check the name"}, errBody["@messages"])
}

func TestAddErrorWithoutDetails(t *testing.T) {
	t.Parallel()

	d := New(nil)
	d.AddError("Forbidden")

	errBody := d[ErrorKey].(map[string]any)
	assert.Equal(t, "Forbidden", errBody["@message"])
	// An empty list, not nil, so the JSON carries [] instead of null.
	assert.Equal(t, []string{}, errBody["@messages"])
}

func TestAddNamespace(t *testing.T) {
	t.Parallel()

	d := New(nil)
	d.AddNamespace("sportbet", "/sportbet/link-relations/")
	d.AddNamespace("other", "/other/")

	namespaces := d[NamespacesKey].(map[string]any)
	assert.Equal(t, map[string]any{"name": "/sportbet/link-relations/"}, namespaces["sportbet"])
	assert.Equal(t, map[string]any{"name": "/other/"}, namespaces["other"])
}

func TestAddControlOverwritesSameName(t *testing.T) {
	t.Parallel()

	d := New(nil)
	d.AddControl("self", Control{Href: "/api/first/"})
	d.AddControl("self", Control{Href: "/api/second/"})

	controls := d.Controls()
	require.Len(t, controls, 1)
	assert.Equal(t, "/api/second/", controls["self"].Href)
}

func TestAddControlPost(t *testing.T) {
	t.Parallel()

	schema := map[string]any{"type": "object"}
	d := New(nil)
	d.AddControlPost("sportbet:add-member", "Add member", "/api/ev/members/", schema)

	ctrl := d.Controls()["sportbet:add-member"]
	assert.Equal(t, "POST", ctrl.Method)
	assert.Equal(t, "json", ctrl.Encoding)
	assert.Equal(t, "/api/ev/members/", ctrl.Href)
	assert.Equal(t, schema, ctrl.Schema)
}

func TestAddControlPutAndDeleteUseNamespacedNames(t *testing.T) {
	t.Parallel()

	d := New(nil)
	d.AddControlPut("sportbet", "Edit bet", "/api/ev/bets/nick/", map[string]any{"type": "object"})
	d.AddControlDelete("sportbet", "Delete member", "/api/ev/members/nick/")

	controls := d.Controls()
	require.Contains(t, controls, "sportbet:edit")
	require.Contains(t, controls, "sportbet:delete")
	assert.Equal(t, "PUT", controls["sportbet:edit"].Method)
	assert.Equal(t, "DELETE", controls["sportbet:delete"].Method)
}

func TestAddItemMergesControlsUpward(t *testing.T) {
	t.Parallel()

	collection := New(nil)
	collection.AddControl("self", Control{Href: "/api/events/"})

	first := New(map[string]any{"name": "a"})
	first.AddControl("self", Control{Href: "/api/events/a/"})
	first.AddControl("profile", Control{Href: "/profiles/event-profile/"})
	collection.AddItem(first)

	second := New(map[string]any{"name": "b"})
	second.AddControl("self", Control{Href: "/api/events/b/"})
	second.AddControl("profile", Control{Href: "/profiles/event-profile/"})
	collection.AddItem(second)

	require.Len(t, collection.Items(), 2)

	controls := collection.Controls()
	// The collection keeps its own self, item selves get ordinal suffixes.
	assert.Equal(t, "/api/events/", controls["self"].Href)
	assert.Equal(t, "/api/events/a/", controls["self-1"].Href)
	assert.Equal(t, "/api/events/b/", controls["self-2"].Href)
	// First profile lands unsuffixed, the colliding one is renamed.
	assert.Equal(t, "/profiles/event-profile/", controls["profile"].Href)
	assert.Equal(t, "/profiles/event-profile/", controls["profile-2"].Href)
}

func TestDocumentSerializesReservedKeys(t *testing.T) {
	t.Parallel()

	d := New(map[string]any{"nickname": "nick"})
	d.AddNamespace("sportbet", LinkRelationsURL)
	d.AddControl("self", Control{Href: "/api/ev/members/nick/"})

	raw, err := json.Marshal(d)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "nick", decoded["nickname"])
	assert.Contains(t, decoded, NamespacesKey)
	controls := decoded[ControlsKey].(map[string]any)
	self := controls["self"].(map[string]any)
	assert.Equal(t, "/api/ev/members/nick/", self["href"])
	// Empty optional fields stay out of the JSON.
	assert.NotContains(t, self, "method")
	assert.NotContains(t, self, "schema")
}
