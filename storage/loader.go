package storage

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v2"
)

const (
	// FileExt holds the default file extension for pipeline files.
	FileExt = ".yml"
)

// ListPath enumerates .yml files in a given folder and returns the
// same folder as an absolute path and a map of files.
func ListPath(dataPath string) (string, map[string]string, error) {
	dataPath, _ = filepath.Abs(dataPath)
	if info, err := os.Stat(dataPath); err != nil {
		return "", nil, err
	} else if info.IsDir() == false {
		return "", nil, fmt.Errorf("%s is not a folder.", dataPath)
	}

	files, err := ioutil.ReadDir(dataPath)
	if err != nil {
		return "", nil, err
	}

	loadable := make(map[string]string)
	for _, file := range files {
		fileName := file.Name()
		if filepath.Ext(fileName) != FileExt {
			continue
		}

		name := strings.TrimSuffix(fileName, FileExt)
		loadable[name] = filepath.Join(dataPath, fileName)
	}

	return dataPath, loadable, nil
}

// Load reads and deserializes a pipeline file.
func Load(fileName string, p *Pipeline) error {
	data, err := ioutil.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("Error while reading %s: %s", fileName, err)
	}

	if err = yaml.Unmarshal(data, p); err != nil {
		return fmt.Errorf("Error while deserializing %s: %s", fileName, err)
	}
	return nil
}
