// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package main

import (
	"os"

	"mdwriter/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
