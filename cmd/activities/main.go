// Command activities serves the Mergington High School extracurricular signup API.
package main

import (
	"github.com/joeydtaylor/steeze-activities/pkg/serverfx"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		serverfx.Module(serverfx.DefaultOptions()),
	).Run()
}
