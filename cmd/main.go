package main

import (
	"fmt"
	"log"
	"os"

	"github.com/kpotier/molview/pkg/cfg"
	"github.com/kpotier/molview/pkg/molecule"
	"github.com/kpotier/molview/pkg/util"
	"github.com/kpotier/molview/pkg/viewer"
)

// report is the structure written to the optional output file after the
// molecule is loaded.
type report struct {
	FileIn string `toml:"file_in"`
	Atoms  int    `toml:"atoms"`
	Bonds  int    `toml:"bonds"`
}

func main() {
	log := log.New(os.Stdout, "", log.LstdFlags)

	var (
		c   cfg.Cfg
		err error
	)

	switch len(os.Args) {
	case 1:
		c = cfg.Default()
	case 2:
		c, err = cfg.New(os.Args[1])
		if err != nil {
			log.Fatal(fmt.Errorf("New: %w", err))
		}
	default:
		log.Fatal("at most one argument is accepted: path of the configuration file")
	}

	mol, err := molecule.Read(c.FileIn)
	if err != nil {
		log.Fatal(fmt.Errorf("Read: %w", err))
	}

	if c.FileOut != "" {
		f, err := util.Write(c.FileOut, report{
			FileIn: c.FileIn,
			Atoms:  len(mol.Atoms),
			Bonds:  len(mol.Bonds),
		})
		if err != nil {
			log.Fatal(fmt.Errorf("Write: %w", err))
		}
		f.Close()
	}

	v, err := viewer.New(c, mol)
	if err != nil {
		log.Fatal(fmt.Errorf("viewer: New: %w", err))
	}

	v.Run()
}
