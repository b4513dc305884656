package walstat

import (
	"fmt"
	"os"
	"path/filepath"
)

// LoadAreas imports the authority-code file from dir into the store,
// seeding it with area names.
func LoadAreas(store *Areas, dir string, filter Filter) error {
	return loadFile(store, filepath.Join(dir, AreasDataset.File), AreasDataset.Source, filter)
}

// LoadDatasets imports every given dataset from dir into the store. The
// first failing file aborts the load and names the dataset that failed;
// everything merged before it stays intact.
func LoadDatasets(store *Areas, dir string, datasets []Dataset, filter Filter) error {
	for _, d := range datasets {
		if err := loadFile(store, filepath.Join(dir, d.File), d.Source, filter); err != nil {
			return fmt.Errorf("dataset %s: %w", d.Code, err)
		}
	}
	return nil
}

// loadFile opens one source file and feeds it to Populate.
func loadFile(store *Areas, path string, src Source, filter Filter) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open %q for reading: %w", path, err)
	}
	defer f.Close()

	if err := store.Populate(f, src, filter); err != nil {
		return fmt.Errorf("cannot import %q: %w", path, err)
	}
	return nil
}
