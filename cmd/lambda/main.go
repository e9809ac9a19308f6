package main

import (
	"github.com/sh5080/inventory-go/pkg/serverless"
)

func main() {
	serverless.LambdaMain()
}
