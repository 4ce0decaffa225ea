package index

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"loco-savior/ds"
	"loco-savior/sawyer/schecksum"
	"loco-savior/sawyer/scompress"
	"loco-savior/sawyer/serr"
	"loco-savior/sawyer/sfile"
	"loco-savior/sawyer/sheader"
	"loco-savior/sawyer/skind"
	"loco-savior/sawyer/sobjects"
)

type ScannerTestSuite struct {
	Dir   string
	Paths map[string]string
	R     *require.Assertions
	suite.Suite
}

func (suite *ScannerTestSuite) writeFile(rel string, bs []byte) string {
	path := filepath.Join(suite.Dir, rel)
	suite.R.NoError(os.MkdirAll(filepath.Dir(path), 0755))
	suite.R.NoError(os.WriteFile(path, bs, 0644))
	return path
}

func (suite *ScannerTestSuite) encodeClimate(name string, encoding scompress.Encoding) []byte {
	objectName, err := sheader.NewName(name)
	suite.R.NoError(err)
	bs, err := sfile.Encode(sfile.File{
		Identity: sheader.NewIdentity(skind.Climate, skind.SourceGameVanilla, objectName),
		Payload:  sheader.Payload{Encoding: encoding},
		Object: &sobjects.Climate{
			SeasonLengths:  [4]uint8{57, 80, 100, 80},
			WinterSnowLine: 48,
			SummerSnowLine: 76,
		},
	})
	suite.R.NoError(err)
	return bs
}

func (suite *ScannerTestSuite) SetupTest() {
	suite.R = suite.Require()
	suite.Dir = suite.T().TempDir()

	climate := suite.encodeClimate("CLIMATE1", scompress.Uncompressed)
	corrupt := append([]byte{}, climate...)
	corrupt[len(corrupt)-1] ^= 0xFF

	// a valid checksum on a kind without a layout: fine to peek, impossible to decode
	industry := append([]byte{}, climate...)
	industry[0] = byte(skind.Industry) | 0x40
	identity, _, err := sheader.Decode(industry)
	suite.R.NoError(err)
	signed := schecksum.Sign(*identity, industry[sheader.Size:])
	copy(industry, sheader.EncodeIdentity(signed))

	suite.Paths = map[string]string{
		"climate":  suite.writeFile("climate.dat", climate),
		"copy":     suite.writeFile("nested/COPY.DAT", climate),
		"rotated":  suite.writeFile("rotated.Dat", suite.encodeClimate("CLIMATE2", scompress.Rotate)),
		"corrupt":  suite.writeFile("corrupt.dat", corrupt),
		"industry": suite.writeFile("industry.dat", industry),
	}
	suite.writeFile("readme.txt", []byte("not an object"))
}

func (suite *ScannerTestSuite) TestList() {
	paths, err := List(suite.Dir)
	suite.R.NoError(err)
	suite.R.Equal(
		[]string{
			suite.Paths["climate"],
			suite.Paths["corrupt"],
			suite.Paths["industry"],
			suite.Paths["copy"],
			suite.Paths["rotated"],
		},
		paths,
	)

	_, err = List(filepath.Join(suite.Dir, "absent"))
	suite.R.Error(err)
}

func (suite *ScannerTestSuite) TestScanDir_Peek() {
	index, err := New(16)
	suite.R.NoError(err)
	scanner := NewScanner(index, nil)
	reported := int32(0)
	scanner.OnResult = func(Result) {
		atomic.AddInt32(&reported, 1)
	}

	results, err := scanner.ScanDir(context.Background(), suite.Dir)
	suite.R.NoError(err)
	suite.R.Len(results, 5)
	suite.R.Equal(int32(5), reported)
	suite.R.Equal(Summary{Total: 5, Cached: 0, Failed: 1}, Summarize(results))

	suite.R.Equal(suite.Paths["corrupt"], results[1].Path)
	suite.R.ErrorAs(results[1].Err, &serr.ErrCorruptFile{})
	suite.R.Equal(skind.Industry, results[2].Entry.Identity.Kind())
	suite.R.True(results[2].Entry.Verified)
	suite.R.False(results[4].Entry.Verified)

	suite.R.Equal(4, index.Len())
	suite.R.Equal(
		[][]string{{suite.Paths["climate"], suite.Paths["copy"]}},
		index.Duplicates(),
	)

	results, err = scanner.ScanDir(context.Background(), suite.Dir)
	suite.R.NoError(err)
	suite.R.Equal(Summary{Total: 5, Cached: 4, Failed: 1}, Summarize(results))
}

func (suite *ScannerTestSuite) TestScan_Full() {
	index, err := New(16)
	suite.R.NoError(err)
	scanner := NewScanner(index, nil)
	scanner.Mode = ModeFull
	scanner.Workers = 1

	results, err := scanner.Scan(
		context.Background(),
		[]string{suite.Paths["rotated"], suite.Paths["industry"], filepath.Join(suite.Dir, "absent.dat")},
	)
	suite.R.NoError(err)
	suite.R.Len(results, 3)

	suite.R.NoError(results[0].Err)
	suite.R.True(results[0].Entry.Verified)
	suite.R.Equal(scompress.Rotate, results[0].Entry.Payload.Encoding)
	suite.R.Equal("CLIMATE2", results[0].Entry.Identity.Name.String())

	suite.R.ErrorAs(results[1].Err, &serr.ErrUnsupportedObjectKind{})
	suite.R.True(errors.Is(results[2].Err, os.ErrNotExist))
	suite.R.Equal(1, index.Len())
}

func (suite *ScannerTestSuite) TestScan_UnknownMode() {
	index, err := New(16)
	suite.R.NoError(err)
	scanner := NewScanner(index, nil)
	scanner.Mode = Mode(9)

	results, err := scanner.Scan(context.Background(), []string{suite.Paths["climate"]})
	suite.R.NoError(err)
	suite.R.ErrorAs(results[0].Err, &ds.ErrUnreachableCode{})
	suite.R.Contains(results[0].Err.Error(), "mode(9)")
}

func (suite *ScannerTestSuite) TestScan_Cancelled() {
	index, err := New(16)
	suite.R.NoError(err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := NewScanner(index, nil).ScanDir(ctx, suite.Dir)
	suite.R.True(errors.Is(err, context.Canceled))
	suite.R.Empty(results)
	suite.R.Equal(0, index.Len())
}

func TestScannerTestSuite(t *testing.T) {
	suite.Run(t, &ScannerTestSuite{})
}
