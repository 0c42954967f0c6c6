// Copyright 2023 The Damm Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build ignore

package main

import (
	"errors"
	"log"
	"os"
	"os/exec"
)

func main() {
	log.SetFlags(0)
	c := exec.Command("go", "run", "./cmd/damm", "gen", "damm.txt")
	o, err := c.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			log.Fatalf("failed to run \"go run ./cmd/damm gen\": %s\n%s", err, exitErr.Stderr)
		}
		log.Fatal(err)
	}
	if err := os.WriteFile("matrices.go", o, 0o644); err != nil {
		log.Fatal(err)
	}
}
