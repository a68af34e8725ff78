// Command datsan is the command-line client of the đặt sân field booking
// platform.
package main

import (
	"github.com/TuanHaii/DoAnPy-HeThongQuanLiDatSan/cmd"
)

func main() {
	cmd.Execute()
}
