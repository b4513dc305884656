package walstat

import (
	"fmt"
	"strings"
)

// Dataset is one known source file from the Welsh Government open data
// service: the short code used on the command line, a human-readable name,
// the file name inside the data directory, and how the file is structured.
type Dataset struct {
	Code   string
	Name   string
	File   string
	Source Source
}

// AreasDataset describes the compiled authority-code file that seeds the
// store with area names in English and Welsh.
var AreasDataset = Dataset{
	Code: "areas",
	Name: "Local authorities",
	File: "areas.csv",
	Source: Source{
		Type: AuthorityCodeCSV,
		Cols: ColumnMapping{
			AuthCode:    "Local authority code",
			AuthNameEng: "Name (eng)",
			AuthNameCym: "Name (cym)",
		},
	},
}

// Datasets lists every dataset the tool knows how to import.
var Datasets = []Dataset{
	{
		Code: "popden",
		Name: "Population density",
		File: "popu1009.json",
		Source: Source{
			Type: WelshStatsJSON,
			Cols: ColumnMapping{
				AuthCode:    "Localauthority_Code",
				AuthNameEng: "Localauthority_ItemName_ENG",
				MeasureCode: "Measure_Code",
				MeasureName: "Measure_ItemName_ENG",
				Year:        "Year_Code",
				Value:       "Data",
			},
		},
	},
	{
		Code: "biz",
		Name: "Active businesses",
		File: "econ0080.json",
		Source: Source{
			Type: WelshStatsJSON,
			Cols: ColumnMapping{
				AuthCode:    "Area_Code",
				AuthNameEng: "Area_ItemName_ENG",
				MeasureCode: "Variable_Code",
				MeasureName: "Variable_ItemName_ENG",
				Year:        "Year_Code",
				Value:       "Data",
			},
		},
	},
	{
		Code: "aqi",
		Name: "Air quality indicators",
		File: "envi0201.json",
		Source: Source{
			Type: WelshStatsJSON,
			Cols: ColumnMapping{
				AuthCode:    "Area_Code",
				AuthNameEng: "Area_ItemName_ENG",
				MeasureCode: "Pollutant_ItemName_ENG",
				MeasureName: "Pollutant_ItemName_ENG",
				Year:        "Year_Code",
				Value:       "Data",
			},
		},
	},
	{
		Code: "trains",
		Name: "Rail passenger journeys",
		File: "tran0152.json",
		Source: Source{
			Type: WelshStatsJSON,
			// This export has no measure fields and carries its values as
			// JSON strings.
			LiteralMeasure: true,
			StringValues:   true,
			Cols: ColumnMapping{
				AuthCode:          "LocalAuthority_Code",
				AuthNameEng:       "LocalAuthority_ItemName_ENG",
				Year:              "Year_Code",
				Value:             "Data",
				SingleMeasureCode: "rail",
				SingleMeasureName: "Rail passenger journeys",
			},
		},
	},
	{
		Code: "complete-pop",
		Name: "Population",
		File: "complete-popu1009-pop.csv",
		Source: Source{
			Type: AuthorityByYearCSV,
			Cols: ColumnMapping{
				AuthCode:          "AuthorityCode",
				SingleMeasureCode: "pop",
				SingleMeasureName: "Population",
			},
		},
	},
	{
		Code: "complete-area",
		Name: "Land area",
		File: "complete-popu1009-area.csv",
		Source: Source{
			Type: AuthorityByYearCSV,
			Cols: ColumnMapping{
				AuthCode:          "AuthorityCode",
				SingleMeasureCode: "area",
				SingleMeasureName: "Land area",
			},
		},
	},
	{
		Code: "complete-dens",
		Name: "Population density",
		File: "complete-popu1009-dens.csv",
		Source: Source{
			Type: AuthorityByYearCSV,
			Cols: ColumnMapping{
				AuthCode:          "AuthorityCode",
				SingleMeasureCode: "dens",
				SingleMeasureName: "Population density",
			},
		},
	},
}

// FindDataset returns the dataset registered under code.
func FindDataset(code string) (Dataset, error) {
	for _, d := range Datasets {
		if d.Code == code {
			return d, nil
		}
	}
	return Dataset{}, fmt.Errorf("no dataset matches key: %s: %w", code, ErrNotFound)
}

// ParseDatasetsArg resolves a comma-separated list of dataset codes into
// the datasets to import. An empty argument, or any entry equal to "all"
// (case-insensitive), selects every dataset.
func ParseDatasetsArg(arg string) ([]Dataset, error) {
	if strings.TrimSpace(arg) == "" {
		return Datasets, nil
	}
	var selected []Dataset
	for _, code := range strings.Split(arg, ",") {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		if strings.EqualFold(code, "all") {
			return Datasets, nil
		}
		d, err := FindDataset(code)
		if err != nil {
			return nil, err
		}
		selected = append(selected, d)
	}
	return selected, nil
}
