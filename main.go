package main

import "github.com/staffdesk/staff-management/cmd"

func main() {
	cmd.Execute()
}
