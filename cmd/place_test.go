package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/solderless/breadboard/internal/controller"
	"github.com/solderless/breadboard/internal/domain"
	m "github.com/solderless/breadboard/internal/model"
)

const testBOM = `{
  "entries": [
    {"type": "resistor", "value": "10k", "quantity": 1, "designators": ["R1"]},
    {"type": "ic", "value": "TL072", "quantity": 1, "designators": ["U1"]}
  ],
  "power": {"voltage": 9, "polarity": "center-negative"}
}`

func writeTestBOM(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bom.json")
	require.NoError(t, os.WriteFile(path, []byte(testBOM), 0o644))

	return path
}

// withCapturedUI rebinds the package UI to a SimpleUI writing into buf for
// the duration of one test.
func withCapturedUI(t *testing.T, buf *bytes.Buffer) {
	t.Helper()

	capture := &cobra.Command{}
	capture.SetOut(buf)

	originalUI := ui
	ui = controller.NewSimpleUI(capture)

	t.Cleanup(func() { ui = originalUI })
}

func TestPlaceCmd(t *testing.T) {
	bomPath := writeTestBOM(t)

	var buf bytes.Buffer

	c := newPlaceCmd()
	c.SetOut(&buf)
	c.SetArgs([]string{bomPath})

	withCapturedUI(t, &buf)

	require.NoError(t, c.Execute())

	out := buf.String()
	assert.Contains(t, out, "R1")
	assert.Contains(t, out, "U1")
	assert.Contains(t, out, "V+")
	assert.Contains(t, out, "GND")
}

func TestPlaceCmd_JSON(t *testing.T) {
	bomPath := writeTestBOM(t)

	jsonFlag = true
	defer func() { jsonFlag = false }()

	var buf bytes.Buffer

	c := newPlaceCmd()
	c.SetOut(&buf)
	c.SetArgs([]string{bomPath})

	require.NoError(t, c.Execute())

	out := buf.String()
	assert.Contains(t, out, `"board": "830"`)
	assert.Contains(t, out, `"label": "R1"`)
	assert.Contains(t, out, `"kind": "jumper"`)
}

func TestPlaceCmd_Out(t *testing.T) {
	bomPath := writeTestBOM(t)
	outPath := filepath.Join(t.TempDir(), "allocation.json")

	jsonFlag = true
	defer func() { jsonFlag = false }()

	var buf bytes.Buffer

	c := newPlaceCmd()
	c.SetOut(&buf)
	c.SetArgs([]string{bomPath, "--out", outPath})

	require.NoError(t, c.Execute())

	saved, err := allocationStore.Load(m.Path(outPath))
	require.NoError(t, err)
	assert.Equal(t, m.Board830, saved.Board)
	assert.Len(t, saved.Placements, 4)
}

func TestPlaceCmd_MissingBOM(t *testing.T) {
	c := newPlaceCmd()
	c.SetOut(&bytes.Buffer{})
	c.SetErr(&bytes.Buffer{})
	c.SetArgs([]string{filepath.Join(t.TempDir(), "absent.json")})

	assert.Error(t, c.Execute())
}

// mockWorkflow lets command tests assert the arguments handed to the
// domain layer.
type mockWorkflow struct {
	mock.Mock
}

func (mw *mockWorkflow) Place(args domain.PlaceArgs) (m.Allocation, error) {
	called := mw.Called(args)

	return called.Get(0).(m.Allocation), called.Error(1)
}

func TestPlaceCmd_PassesSelectedBoard(t *testing.T) {
	bomPath := writeTestBOM(t)

	mw := new(mockWorkflow)
	mw.On("Place", mock.MatchedBy(func(args domain.PlaceArgs) bool {
		return args.Board == m.Board400 && len(args.BOM.Entries) == 2
	})).Return(m.Allocation{Board: m.Board400}, nil)

	originalWorkflow := workflow
	workflow = mw

	boardFlag = string(m.Board400)

	defer func() {
		workflow = originalWorkflow
		boardFlag = string(m.Board830)
	}()

	jsonFlag = true
	defer func() { jsonFlag = false }()

	c := newPlaceCmd()
	c.SetOut(&bytes.Buffer{})
	c.SetArgs([]string{bomPath})

	require.NoError(t, c.Execute())
	mw.AssertExpectations(t)
}
