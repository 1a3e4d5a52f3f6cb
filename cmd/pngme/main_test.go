package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/woozymasta/pngme"
	"github.com/woozymasta/pngme/internal/config"
)

// writeTestPNG writes a minimal IHDR/IDAT/IEND file and returns its path.
func writeTestPNG(t *testing.T) string {
	t.Helper()

	p := pngme.New(
		pngme.NewChunk(pngme.TypeIHDR, []byte{0, 0, 0, 1, 0, 0, 0, 1, 8, 6, 0, 0, 0}),
		pngme.NewChunk(pngme.TypeIDAT, []byte{0x78, 0x9c, 0x63, 0x60, 0x00, 0x00, 0x00, 0x02, 0x00, 0x01}),
		pngme.NewChunk(pngme.TypeIEND, nil),
	)
	path := filepath.Join(t.TempDir(), "dice.png")
	require.NoError(t, os.WriteFile(path, p.Bytes(), 0o644))
	return path
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv(config.EnvPath, "")

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func readTypes(t *testing.T, path string) string {
	t.Helper()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	p, err := pngme.Decode(raw)
	require.NoError(t, err)

	names := make([]string, 0, p.ChunkCount())
	for _, c := range p.Chunks() {
		names = append(names, c.Type().String())
	}
	return strings.Join(names, ",")
}

func TestEncodeDecodeRemove(t *testing.T) {
	should := require.New(t)
	path := writeTestPNG(t)

	code, _, stderr := runCLI(t, "encode", path, "ruSt", "This is a secret message!")
	should.Equal(0, code, stderr)
	should.Equal("IHDR,IDAT,ruSt,IEND", readTypes(t, path))

	code, stdout, stderr := runCLI(t, "decode", path, "ruSt")
	should.Equal(0, code, stderr)
	should.Equal("This is a secret message!\n", stdout)

	code, _, stderr = runCLI(t, "remove", path, "ruSt")
	should.Equal(0, code, stderr)
	should.Equal("IHDR,IDAT,IEND", readTypes(t, path))

	code, stdout, stderr = runCLI(t, "decode", path, "ruSt")
	should.Equal(1, code)
	should.Empty(stdout)
	should.Contains(stderr, "no ruSt chunk")
}

func TestEncodeMessageStartingWithMagic(t *testing.T) {
	should := require.New(t)
	path := writeTestPNG(t)

	code, _, stderr := runCLI(t, "encode", path, "ruSt", "PMv1 rocks")
	should.Equal(0, code, stderr)

	code, stdout, stderr := runCLI(t, "decode", path, "ruSt")
	should.Equal(0, code, stderr)
	should.Equal("PMv1 rocks\n", stdout)
}

func TestRemoveHelpListsFlags(t *testing.T) {
	should := require.New(t)

	code, _, stderr := runCLI(t, "remove", "--help")
	should.Equal(0, code)
	should.Contains(stderr, "Usage: pngme remove [--all] [-o OUTPUT] FILE TYPE")
	should.Contains(stderr, "--output")
}

func TestEncodeToOutputAndAppend(t *testing.T) {
	should := require.New(t)
	path := writeTestPNG(t)
	output := filepath.Join(t.TempDir(), "out.png")

	code, _, stderr := runCLI(t, "encode", "--append", path, "teXt", "hello", output)
	should.Equal(0, code, stderr)
	should.Equal("IHDR,IDAT,IEND", readTypes(t, path))
	should.Equal("IHDR,IDAT,IEND,teXt", readTypes(t, output))
}

func TestEncodeDefaultTypeAndCompression(t *testing.T) {
	should := require.New(t)
	path := writeTestPNG(t)
	message := strings.Repeat("compress me please ", 50)

	code, _, stderr := runCLI(t, "encode", "--compress", "zstd", path, message)
	should.Equal(0, code, stderr)
	should.Equal("IHDR,IDAT,ruSt,IEND", readTypes(t, path))

	code, stdout, stderr := runCLI(t, "decode", path)
	should.Equal(0, code, stderr)
	should.Equal(message+"\n", stdout)
}

func TestEncodePassphrase(t *testing.T) {
	should := require.New(t)
	path := writeTestPNG(t)

	cfgPath := filepath.Join(t.TempDir(), "pngme.yaml")
	should.NoError(os.WriteFile(cfgPath, []byte("scrypt_work_factor: 10\n"), 0o644))
	t.Setenv("PNGME_TEST_PASSPHRASE", "correct horse")

	code, _, stderr := runCLI(t, "--config", cfgPath, "encode", "--passphrase-env", "PNGME_TEST_PASSPHRASE", path, "ruSt", "top secret")
	should.Equal(0, code, stderr)

	raw, err := os.ReadFile(path)
	should.NoError(err)
	should.NotContains(string(raw), "top secret")

	code, _, stderr = runCLI(t, "decode", path, "ruSt")
	should.Equal(1, code)
	should.Contains(stderr, "passphrase required")

	code, stdout, stderr := runCLI(t, "decode", "--passphrase-env", "PNGME_TEST_PASSPHRASE", path, "ruSt")
	should.Equal(0, code, stderr)
	should.Equal("top secret\n", stdout)
}

func TestRemoveAllAndNotFound(t *testing.T) {
	should := require.New(t)
	path := writeTestPNG(t)

	for _, msg := range []string{"one", "two"} {
		code, _, stderr := runCLI(t, "encode", path, "ruSt", msg)
		should.Equal(0, code, stderr)
	}
	should.Equal("IHDR,IDAT,ruSt,ruSt,IEND", readTypes(t, path))

	before, err := os.ReadFile(path)
	should.NoError(err)
	code, _, stderr := runCLI(t, "remove", path, "miSs")
	should.Equal(1, code)
	should.Contains(stderr, "no miSs chunk")
	after, err := os.ReadFile(path)
	should.NoError(err)
	should.Equal(before, after)

	code, _, stderr = runCLI(t, "remove", "--all", path, "ruSt")
	should.Equal(0, code, stderr)
	should.Equal("IHDR,IDAT,IEND", readTypes(t, path))
}

func TestPrint(t *testing.T) {
	should := require.New(t)
	path := writeTestPNG(t)

	code, _, stderr := runCLI(t, "encode", path, "Rust", "hi")
	should.Equal(0, code, stderr)

	code, stdout, stderr := runCLI(t, "print", path)
	should.Equal(0, code, stderr)
	should.Contains(stdout, "#0 IHDR [critical public unsafe-to-copy]")
	should.Contains(stdout, "#2 Rust [critical private safe-to-copy reserved-bit-set]")
	should.Contains(stdout, "Message: hi")
	should.Contains(stdout, "#3 IEND")
}

func TestStrictChunkTypes(t *testing.T) {
	should := require.New(t)
	path := writeTestPNG(t)

	cfgPath := filepath.Join(t.TempDir(), "pngme.yaml")
	should.NoError(os.WriteFile(cfgPath, []byte("strict_chunk_types: true\n"), 0o644))

	code, _, stderr := runCLI(t, "--config", cfgPath, "encode", path, "Rust", "hi")
	should.Equal(1, code)
	should.Contains(stderr, "reserved bit")
	should.Equal("IHDR,IDAT,IEND", readTypes(t, path))
}

func TestUsageErrors(t *testing.T) {
	should := require.New(t)
	path := writeTestPNG(t)

	code, _, stderr := runCLI(t)
	should.Equal(2, code)
	should.Contains(stderr, "Usage: pngme")

	code, _, stderr = runCLI(t, "frobnicate")
	should.Equal(2, code)
	should.Contains(stderr, `unknown command "frobnicate"`)

	code, _, stderr = runCLI(t, "encode", path)
	should.Equal(1, code)
	should.Contains(stderr, "got 1 arguments")

	code, _, stderr = runCLI(t, "encode", path, "ru5t", "x")
	should.Equal(1, code)
	should.Contains(stderr, "chunk type must be 4 ASCII letters")

	code, _, stderr = runCLI(t, "--log-level", "loud", "print", path)
	should.Equal(2, code)
	should.Contains(stderr, "log_level")

	code, stdout, _ := runCLI(t, "--version")
	should.Equal(0, code)
	should.Equal("pngme dev\n", stdout)
}

func TestDecodeCorruptFile(t *testing.T) {
	should := require.New(t)
	path := writeTestPNG(t)

	raw, err := os.ReadFile(path)
	should.NoError(err)
	raw[len(raw)-1] ^= 0xff
	should.NoError(os.WriteFile(path, raw, 0o644))

	code, _, stderr := runCLI(t, "print", path)
	should.Equal(1, code)
	should.Contains(stderr, "chunk CRC mismatch")
}
