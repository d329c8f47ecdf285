// Package asciiart prints the testrig logo banner.
package asciiart

import (
	"fmt"
	"io"
)

const logo = `
 _            _        _
| |_ ___  ___| |_ _ __(_) __ _
| __/ _ \/ __| __| '__| |/ _` + "`" + ` |
| ||  __/\__ \ |_| |  | | (_| |
 \__\___||___/\__|_|  |_|\__, |
                         |___/
`

// PrintTestrigLogo writes the testrig ASCII logo to the writer.
func PrintTestrigLogo(writer io.Writer) {
	_, _ = fmt.Fprint(writer, logo)
}
