package prjmk

import (
	"log"
)

// Must panics if err is not nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// LogMust calls [log.Panic] if err is not nil.
func LogMust(err error) {
	if err != nil {
		log.Panic(err)
	}
}
