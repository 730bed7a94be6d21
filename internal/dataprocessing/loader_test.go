package dataprocessing

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"layoffscli/internal/errors"
)

const feedHeader = "company,location,industry,total_laid_off,percentage_laid_off,date,stage,country,funds_raised_millions\n"

func TestLoadCSV(t *testing.T) {
	feed := feedHeader +
		"Acme,SF Bay Area,Tech,100,0.25,3/6/2023,Series B,United States,250\n" +
		"Globex,London,,\"1,200\",,12/1/2022,Post-IPO,United Kingdom.,$400\n"

	records, err := LoadCSV(strings.NewReader(feed))
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "Acme", first.Company)
	require.NotNil(t, first.Industry)
	assert.Equal(t, "Tech", *first.Industry)
	require.NotNil(t, first.TotalLaidOff)
	assert.Equal(t, int64(100), *first.TotalLaidOff)
	require.NotNil(t, first.PercentageLaidOff)
	assert.Equal(t, 0.25, *first.PercentageLaidOff)
	assert.Equal(t, "3/6/2023", first.RawDate)
	assert.Nil(t, first.Date, "the loader must not parse dates; that is a pipeline stage")

	second := records[1]
	require.NotNil(t, second.Industry)
	assert.Equal(t, "", *second.Industry, "blank industry text survives the loader for reconciliation")
	require.NotNil(t, second.TotalLaidOff)
	assert.Equal(t, int64(1200), *second.TotalLaidOff, "thousands separators are accepted")
	assert.Nil(t, second.PercentageLaidOff)
	require.NotNil(t, second.FundsRaisedMillions)
	assert.Equal(t, int64(400), *second.FundsRaisedMillions, "currency prefixes are accepted")
}

func TestLoadCSV_BOM(t *testing.T) {
	feed := "\xEF\xBB\xBF" + feedHeader + "Acme,SF,Tech,10,,3/6/2023,Seed,USA,5\n"

	records, err := LoadCSV(strings.NewReader(feed))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Acme", records[0].Company)
}

func TestLoadCSV_LooseNumericText(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		wantNull bool
		want     int64
	}{
		{name: "plain integer", value: "150", want: 150},
		{name: "decimal rounds", value: "121.6", want: 122},
		{name: "blank is null", value: "", wantNull: true},
		{name: "NULL token is null", value: "NULL", wantNull: true},
		{name: "garbage is null", value: "unknown", wantNull: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feed := feedHeader + "Acme,SF,Tech," + tt.value + ",0.1,3/6/2023,Seed,USA,\n"
			records, err := LoadCSV(strings.NewReader(feed))
			require.NoError(t, err, "loose numeric text must never fail the batch")
			require.Len(t, records, 1)

			if tt.wantNull {
				assert.Nil(t, records[0].TotalLaidOff)
			} else {
				require.NotNil(t, records[0].TotalLaidOff)
				assert.Equal(t, tt.want, *records[0].TotalLaidOff)
			}
		})
	}
}

func TestLoadCSV_StructuralErrors(t *testing.T) {
	tests := []struct {
		name string
		feed string
	}{
		{
			name: "missing column",
			feed: "company,location,industry,total_laid_off,percentage_laid_off,date,stage,country\nAcme,SF,Tech,1,,3/6/2023,Seed,USA\n",
		},
		{
			name: "unexpected column",
			feed: strings.TrimSuffix(feedHeader, "\n") + ",ceo\nAcme,SF,Tech,1,,3/6/2023,Seed,USA,5,Jane\n",
		},
		{
			name: "empty feed",
			feed: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCSV(strings.NewReader(tt.feed))
			require.Error(t, err, "structurally invalid input must refuse to run")

			var appErr *errors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, errors.ErrTypeValidation, appErr.Type)
		})
	}
}

func TestLoadCSV_ColumnOrderIndependent(t *testing.T) {
	feed := "date,company,location,industry,total_laid_off,percentage_laid_off,stage,country,funds_raised_millions\n" +
		"3/6/2023,Acme,SF,Tech,10,,Seed,USA,5\n"

	records, err := LoadCSV(strings.NewReader(feed))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Acme", records[0].Company)
	assert.Equal(t, "3/6/2023", records[0].RawDate)
}

func TestLoadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layoffs.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	header := []interface{}{"company", "location", "industry", "total_laid_off", "percentage_laid_off", "date", "stage", "country", "funds_raised_millions"}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	row := []interface{}{"Acme", "SF", "Tech", "10", "0.1", "3/6/2023", "Seed", "USA", "5"}
	require.NoError(t, f.SetSheetRow(sheet, "A2", &row))
	require.NoError(t, f.SaveAs(path))

	records, err := LoadXLSX(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Acme", records[0].Company)
	require.NotNil(t, records[0].TotalLaidOff)
	assert.Equal(t, int64(10), *records[0].TotalLaidOff)
}

func TestLoadFile_UnsupportedExtension(t *testing.T) {
	_, err := LoadFile("layoffs.parquet")
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrTypeValidation, appErr.Type)
}
