package scw

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renameFixture(t *testing.T) *Document {
	t.Helper()
	input := weightFile(
		"L_arm L_hand spine Mesh",
		"skinA",
		"-nw 1 -mi 4 -dr 4.0",
		"[0, 'L_arm', 0, 0.5]",
		"[0, 'L_hand', 1, 0.5]",
		"[1, 'spine', 2, 1.0]",
	)
	doc, err := DecodeDocument(strings.NewReader(input))
	require.NoError(t, err)
	return doc
}

func TestRenameInfluences(t *testing.T) {
	doc := renameFixture(t)

	n := doc.RenameInfluences("L_", "R_")
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"R_arm", "R_hand", "spine"}, doc.Header.Influences)
	assert.Equal(t, "Mesh", doc.Header.Target)
	assert.Equal(t, "R_arm", doc.Records[0].Influence)
	assert.Equal(t, "R_hand", doc.Records[1].Influence)
	assert.Equal(t, "spine", doc.Records[2].Influence)
}

func TestRenameInfluencesEmptySearch(t *testing.T) {
	doc := renameFixture(t)
	assert.Zero(t, doc.RenameInfluences("", "x"))
	assert.Equal(t, []string{"L_arm", "L_hand", "spine"}, doc.Header.Influences)
}

func TestAffixInfluences(t *testing.T) {
	doc := renameFixture(t)

	doc.AffixInfluences("rig:", "_jnt")
	assert.Equal(t, []string{"rig:L_arm_jnt", "rig:L_hand_jnt", "rig:spine_jnt"}, doc.Header.Influences)
	assert.Equal(t, "Mesh", doc.Header.Target)
	assert.Equal(t, "rig:spine_jnt", doc.Records[2].Influence)
}

func TestRenamedDocumentStaysDecodable(t *testing.T) {
	doc := renameFixture(t)
	doc.RenameInfluences("L_", "R_")

	var sb strings.Builder
	require.NoError(t, EncodeDocument(&sb, doc))

	reparsed, err := DecodeDocument(strings.NewReader(sb.String()))
	require.NoError(t, err)
	assert.Equal(t, doc.Header, reparsed.Header)
	assert.Equal(t, doc.Records, reparsed.Records)
}
