package storage

import (
	"fmt"
	"io/ioutil"

	yaml "gopkg.in/yaml.v2"
)

func Flush(p *Pipeline, fileName string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("Error while serializing pipeline to %s: %s", fileName, err)
	} else if err = ioutil.WriteFile(fileName, data, 0644); err != nil {
		return fmt.Errorf("Error while saving pipeline to %s: %s", fileName, err)
	}
	return nil
}
