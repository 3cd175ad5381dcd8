package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fulldump/goconfig"

	"github.com/fulldump/countrytable/bootstrap"
	"github.com/fulldump/countrytable/configuration"
)

var VERSION = "dev"

var banner = `
                       _                _        _     _
  ___ ___  _   _ _ __ | |_ _ __ _   _  | |_ __ _| |__ | | ___
 / __/ _ \| | | | '_ \| __| '__| | | | | __/ _' | '_ \| |/ _ \
| (_| (_) | |_| | | | | |_| |  | |_| | | || (_| | |_) | |  __/
 \___\___/ \__,_|_| |_|\__|_|   \__, |  \__\__,_|_.__/|_|\___|
                                |___/   version ` + VERSION + `
`

func main() {

	c := configuration.Default()
	goconfig.Read(&c)

	if c.Version {
		fmt.Println("Version:", VERSION)
		return
	}

	if c.ShowBanner {
		fmt.Println(banner)
	}

	if c.ShowConfig {
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "    ")
		e.Encode(c)
	}

	bootstrap.VERSION = VERSION
	start, _ := bootstrap.Bootstrap(&c)
	start()
}
