package registry_test

import (
	"testing"

	"github.com/schemaforge/servergen/internal/core/errs"
	"github.com/schemaforge/servergen/internal/core/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeNormalizesSlashesAndDotSegments(t *testing.T) {
	assert.Equal(t, "contracts/user/user.dto.ts", registry.Canonicalize(`contracts\user\.\user.dto.ts`))
	assert.Equal(t, "contracts/user.dto.ts", registry.Canonicalize("contracts/tmp/../user.dto.ts"))
	assert.Equal(t, "user.dto.ts", registry.Canonicalize("//user.dto.ts"))
}

func TestRegisterRejectsCaseInsensitiveCollision(t *testing.T) {
	r := registry.NewFilePathRegistry()
	require.NoError(t, r.Register("contracts/User.service.ts", "dto-phase", "User"))

	err := r.Register("contracts/user.service.ts", "validator-phase", "user")
	require.Error(t, err)

	var collision *errs.PathCollision
	require.ErrorAs(t, err, &collision)
	assert.Equal(t, "dto-phase", collision.Owner)
	assert.Equal(t, "validator-phase", collision.Attempted)
}

func TestRegisterIsIdempotentForSameSourceAndPath(t *testing.T) {
	r := registry.NewFilePathRegistry()
	require.NoError(t, r.Register("contracts/user.dto.ts", "dto-phase", "User"))
	require.NoError(t, r.Register("contracts/user.dto.ts", "dto-phase", "User"))
	assert.Equal(t, 1, r.Len())
}

func TestSnapshotRestoreDiscardsLaterRegistrations(t *testing.T) {
	r := registry.NewFilePathRegistry()
	require.NoError(t, r.Register("a.ts", "phase-a", ""))
	snap := r.Snapshot()

	require.NoError(t, r.Register("b.ts", "phase-b", ""))
	assert.Equal(t, 2, r.Len())

	r.Restore(snap)
	assert.Equal(t, 1, r.Len())
	assert.True(t, r.Has("a.ts"))
	assert.False(t, r.Has("b.ts"))
}

func TestGeneratedFilesBuilderRollsBackPartialPhaseWrites(t *testing.T) {
	r := registry.NewFilePathRegistry()
	g := registry.NewGeneratedFilesBuilder(r)

	require.NoError(t, g.AddFile("contracts", "contracts/user.dto.ts", "export interface UserDto {}", "dto-phase", "User"))
	snap := g.Snapshot()
	regSnap := r.Snapshot()

	require.NoError(t, g.AddFile("contracts", "contracts/post.dto.ts", "export interface PostDto {}", "dto-phase", "Post"))
	err := g.AddFile("contracts", "contracts/POST.dto.ts", "duplicate", "dto-phase-retry", "Post")
	require.Error(t, err)

	g.Restore(snap)
	r.Restore(regSnap)

	files := g.AllFiles()
	assert.Len(t, files, 1)
	_, hasUser := files["contracts/user.dto.ts"]
	assert.True(t, hasUser)
	assert.False(t, r.Has("contracts/post.dto.ts"), "rollback must also restore the registry, not just the builder")
}

func TestPathUniquenessAcrossFamilies(t *testing.T) {
	r := registry.NewFilePathRegistry()
	g := registry.NewGeneratedFilesBuilder(r)

	require.NoError(t, g.AddFile("controllers", "routes/user.ts", "controller body", "controller-phase", "User"))
	err := g.AddFile("routes", "routes/user.ts", "route body", "route-phase", "User")
	require.Error(t, err, "two families claiming the identical canonical path must still collide")
}
