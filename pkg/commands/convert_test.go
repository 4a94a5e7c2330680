package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/classifiles/pkg/errors"
	"github.com/arthur-debert/classifiles/pkg/filesystem"
	"github.com/arthur-debert/classifiles/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupOutOfPlace(t *testing.T) {
	input := t.TempDir()
	output := t.TempDir()

	testutil.CreateSymlink(t, "/abs/input/photo.jpg", filepath.Join(input, "image-png", "photo.png"))
	testutil.CreateFile(t, input, "notes.txt", []byte("keep me\n"))

	result, err := Backup(ConvertOptions{InputDir: input, OutputDir: output})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Converted)
	assert.Equal(t, 1, result.Passed)
	assert.Equal(t, 0, result.Failed)

	// the marker holds exactly the target plus one newline
	marker := filepath.Join(output, "image-png", "photo.png.symlink")
	data, err := os.ReadFile(marker)
	require.NoError(t, err)
	assert.Equal(t, "/abs/input/photo.jpg\n", string(data))

	// regular files are copied through unchanged
	copied, err := os.ReadFile(filepath.Join(output, "notes.txt"))
	require.NoError(t, err)
	assert.Equal(t, "keep me\n", string(copied))

	// the input tree is untouched
	assert.Equal(t, "/abs/input/photo.jpg",
		testutil.ReadLink(t, filepath.Join(input, "image-png", "photo.png")))
}

func TestBackupInPlace(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "doc.pdf")
	testutil.CreateSymlink(t, "/abs/input/doc", link)
	testutil.CreateFile(t, dir, "plain.txt", []byte("stays\n"))

	result, err := Backup(ConvertOptions{InputDir: dir, OutputDir: dir})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Converted)

	// symlink is replaced by the marker at the same relative path
	_, lerr := os.Lstat(link)
	assert.True(t, os.IsNotExist(lerr))

	data, err := os.ReadFile(link + ".symlink")
	require.NoError(t, err)
	assert.Equal(t, "/abs/input/doc\n", string(data))

	// non-symlink entries are left untouched
	_, serr := os.Stat(filepath.Join(dir, "plain.txt"))
	assert.NoError(t, serr)
}

func TestBackupInPlaceMarkerNameOccupied(t *testing.T) {
	// extensionless inputs named a and a.symlink scan into sibling links
	// where a's marker name is already taken by the a.symlink link
	srcDir := t.TempDir()
	tree := t.TempDir()
	raw := []byte{0x00, 0x01, 0x02, 0xff}
	testutil.CreateFile(t, srcDir, "a", raw)
	testutil.CreateFile(t, srcDir, "a.symlink", raw)

	scanResult, err := Scan(ScanOptions{Input: srcDir, OutputDir: tree})
	require.NoError(t, err)
	require.Equal(t, 2, scanResult.Linked)

	wantTree := testutil.ListTree(t, tree)
	typeDir := filepath.Join(tree, "application-octet-stream")

	result, err := Backup(ConvertOptions{InputDir: tree, OutputDir: tree})
	require.NoError(t, err)

	// a cannot be converted: writing its marker would go through the
	// sibling symlink into the original file
	assert.Equal(t, 1, result.Converted)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.True(t, errors.IsErrorCode(result.Errors[0].Err, errors.ErrFileWrite))

	// the originals still hold their bytes and the a link is untouched
	for _, name := range []string{"a", "a.symlink"} {
		data, rerr := os.ReadFile(filepath.Join(srcDir, name))
		require.NoError(t, rerr)
		assert.Equal(t, raw, data, name)
	}
	assert.Equal(t, filepath.Join(srcDir, "a"), testutil.ReadLink(t, filepath.Join(typeDir, "a")))

	// the converted sibling still round-trips
	_, err = Restore(ConvertOptions{InputDir: tree, OutputDir: tree})
	require.NoError(t, err)
	assert.Equal(t, wantTree, testutil.ListTree(t, tree))
	assert.Equal(t, filepath.Join(srcDir, "a.symlink"),
		testutil.ReadLink(t, filepath.Join(typeDir, "a.symlink")))
}

func TestBackupWalksThroughFS(t *testing.T) {
	dir := t.TempDir()
	testutil.CreateSymlink(t, "/abs/t", filepath.Join(dir, "sub", "l.bin"))

	rec := &recordingFS{FS: filesystem.NewOS()}
	result, err := Backup(ConvertOptions{InputDir: dir, OutputDir: dir, FS: rec})
	require.NoError(t, err)
	require.Equal(t, 1, result.Converted)

	assert.Contains(t, rec.readDirs, dir)
	assert.Contains(t, rec.readDirs, filepath.Join(dir, "sub"))
}

func TestRestoreInPlace(t *testing.T) {
	dir := t.TempDir()
	testutil.CreateFile(t, dir, "image-png/photo.png.symlink", []byte("/abs/input/photo.jpg\n"))

	result, err := Restore(ConvertOptions{InputDir: dir, OutputDir: dir})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Converted)
	assert.Equal(t, 0, result.Failed)

	link := filepath.Join(dir, "image-png", "photo.png")
	assert.Equal(t, "/abs/input/photo.jpg", testutil.ReadLink(t, link))

	// the marker is gone
	_, merr := os.Lstat(link + ".symlink")
	assert.True(t, os.IsNotExist(merr))
}

func TestRestoreOutOfPlace(t *testing.T) {
	input := t.TempDir()
	output := t.TempDir()
	testutil.CreateFile(t, input, "doc.pdf.symlink", []byte("/abs/input/doc\n"))
	testutil.CreateFile(t, input, "notes.txt", []byte("carry\n"))

	result, err := Restore(ConvertOptions{InputDir: input, OutputDir: output})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Converted)
	assert.Equal(t, 1, result.Passed)

	assert.Equal(t, "/abs/input/doc", testutil.ReadLink(t, filepath.Join(output, "doc.pdf")))

	copied, err := os.ReadFile(filepath.Join(output, "notes.txt"))
	require.NoError(t, err)
	assert.Equal(t, "carry\n", string(copied))

	// input markers survive an out-of-place restore
	_, serr := os.Stat(filepath.Join(input, "doc.pdf.symlink"))
	assert.NoError(t, serr)
}

func TestRestoreMalformedMarkerIsSkipped(t *testing.T) {
	dir := t.TempDir()
	testutil.CreateFile(t, dir, "empty.symlink", nil)
	testutil.CreateFile(t, dir, "multi.symlink", []byte("/a\n/b\n"))
	testutil.CreateFile(t, dir, "good.symlink", []byte("/abs/target\n"))

	result, err := Restore(ConvertOptions{InputDir: dir, OutputDir: dir})
	require.NoError(t, err)

	// the run continues past malformed markers
	assert.Equal(t, 1, result.Converted)
	assert.Equal(t, 2, result.Failed)
	for _, fe := range result.Errors {
		assert.True(t, errors.IsErrorCode(fe.Err, errors.ErrRestoreMarker))
	}

	assert.Equal(t, "/abs/target", testutil.ReadLink(t, filepath.Join(dir, "good")))
}

func TestRestoreWithoutNewlineTerminator(t *testing.T) {
	dir := t.TempDir()
	// a marker written without the trailing newline is still one line
	testutil.CreateFile(t, dir, "bare.symlink", []byte("/abs/target"))

	result, err := Restore(ConvertOptions{InputDir: dir, OutputDir: dir})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Converted)
	assert.Equal(t, "/abs/target", testutil.ReadLink(t, filepath.Join(dir, "bare")))
}

func TestBackupRestoreRoundTrip(t *testing.T) {
	// build a real scan output, then prove restore(backup(T)) == T
	srcDir := t.TempDir()
	tree := t.TempDir()
	testutil.CreateFile(t, srcDir, "photo.jpg", pngHeader)
	testutil.CreateFile(t, srcDir, "readme", []byte("hello there\n"))
	testutil.CreateFile(t, srcDir, "sub/data.txt", []byte("nested\n"))

	_, err := Scan(ScanOptions{Input: srcDir, OutputDir: tree})
	require.NoError(t, err)

	wantTree := testutil.ListTree(t, tree)
	wantTargets := map[string]string{}
	for _, rel := range wantTree {
		full := filepath.Join(tree, filepath.FromSlash(rel))
		if info, lerr := os.Lstat(full); lerr == nil && info.Mode()&os.ModeSymlink != 0 {
			wantTargets[rel] = testutil.ReadLink(t, full)
		}
	}
	require.NotEmpty(t, wantTargets)

	backupResult, err := Backup(ConvertOptions{InputDir: tree, OutputDir: tree})
	require.NoError(t, err)
	assert.Equal(t, len(wantTargets), backupResult.Converted)

	// no symlinks remain after backup
	for rel := range wantTargets {
		_, lerr := os.Lstat(filepath.Join(tree, filepath.FromSlash(rel)))
		assert.True(t, os.IsNotExist(lerr))
	}

	restoreResult, err := Restore(ConvertOptions{InputDir: tree, OutputDir: tree})
	require.NoError(t, err)
	assert.Equal(t, backupResult.Converted, restoreResult.Converted)

	assert.Equal(t, wantTree, testutil.ListTree(t, tree))
	for rel, target := range wantTargets {
		assert.Equal(t, target, testutil.ReadLink(t, filepath.Join(tree, filepath.FromSlash(rel))))
	}
}

func TestBackupMissingInputIsFatal(t *testing.T) {
	_, err := Backup(ConvertOptions{
		InputDir:  filepath.Join(t.TempDir(), "gone"),
		OutputDir: t.TempDir(),
	})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInputAccess))
}

func TestConvertCustomMarkerSuffix(t *testing.T) {
	dir := t.TempDir()
	testutil.CreateSymlink(t, "/abs/x", filepath.Join(dir, "x.bin"))

	_, err := Backup(ConvertOptions{InputDir: dir, OutputDir: dir, MarkerSuffix: ".lnk"})
	require.NoError(t, err)

	_, serr := os.Stat(filepath.Join(dir, "x.bin.lnk"))
	require.NoError(t, serr)

	result, err := Restore(ConvertOptions{InputDir: dir, OutputDir: dir, MarkerSuffix: ".lnk"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Converted)
	assert.Equal(t, "/abs/x", testutil.ReadLink(t, filepath.Join(dir, "x.bin")))
}
