package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// screenFile is the on-disk description of a set of screens.
//
//	start: home
//	screens:
//	  - id: home
//	    title: Home
//	    body: |
//	      Welcome.
//	    links:
//	      - label: About
//	        target: about
type screenFile struct {
	Start   string      `yaml:"start"`
	Screens []screenDef `yaml:"screens"`
}

type screenDef struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Body  string `yaml:"body,omitempty"`
	Links []link `yaml:"links,omitempty"`
}

type link struct {
	Label  string `yaml:"label"`
	Target string `yaml:"target"`
}

// screenSet is a validated screenFile indexed by screen ID.
type screenSet struct {
	start string
	byID  map[string]screenDef
}

var errNoScreens = errors.New("no screens defined")

func (s *screenSet) get(id string) (screenDef, bool) {
	def, ok := s.byID[id]
	return def, ok
}

// loadScreens reads and validates a screen file.
func loadScreens(path string) (*screenSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read screens: %w", err)
	}
	return parseScreens(data)
}

func parseScreens(data []byte) (*screenSet, error) {
	var f screenFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse screens: %w", err)
	}
	return f.validate()
}

func (f screenFile) validate() (*screenSet, error) {
	if len(f.Screens) == 0 {
		return nil, errNoScreens
	}
	set := &screenSet{start: f.Start, byID: make(map[string]screenDef, len(f.Screens))}
	for i, s := range f.Screens {
		if s.ID == "" {
			return nil, fmt.Errorf("screen %d: missing id", i)
		}
		if _, dup := set.byID[s.ID]; dup {
			return nil, fmt.Errorf("screen %q: duplicate id", s.ID)
		}
		set.byID[s.ID] = s
	}
	if set.start == "" {
		set.start = f.Screens[0].ID
	}
	if _, ok := set.byID[set.start]; !ok {
		return nil, fmt.Errorf("start screen %q not defined", set.start)
	}
	for _, s := range f.Screens {
		for _, l := range s.Links {
			if _, ok := set.byID[l.Target]; !ok {
				return nil, fmt.Errorf("screen %q: link %q targets unknown screen %q", s.ID, l.Label, l.Target)
			}
		}
	}
	return set, nil
}

// defaultScreens is used when no screen file is given.
func defaultScreens() *screenSet {
	set, err := screenFile{
		Start: "home",
		Screens: []screenDef{
			{
				ID:    "home",
				Title: "Home",
				Body:  "Pick a screen. Each one replaces the last.",
				Links: []link{{Label: "About", Target: "about"}, {Label: "Settings", Target: "settings"}},
			},
			{
				ID:    "about",
				Title: "About",
				Body:  "construct clears the previous screen before drawing the next.",
				Links: []link{{Label: "Home", Target: "home"}},
			},
			{
				ID:    "settings",
				Title: "Settings",
				Body:  "Nothing to configure yet.",
				Links: []link{{Label: "About", Target: "about"}},
			},
		},
	}.validate()
	if err != nil {
		panic(err)
	}
	return set
}
