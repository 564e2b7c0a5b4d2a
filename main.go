// Lawmatch ranks lawyers against legal issues from the command line.
package main

import (
	"github.com/lawyerconnect/lawmatch/cmd"
	"github.com/lawyerconnect/lawmatch/internal/contract"
	"github.com/lawyerconnect/lawmatch/internal/dbstore"
)

func main() {
	cmd.SetStoreManager(dbstore.Manager)

	err := cmd.Execute()

	// Close stores and flush profiles before reporting the outcome so a
	// failed command still releases its database handles.
	dbstore.CloseStores()
	if profErr := cmd.StopProfiling(); profErr != nil {
		contract.LogWarn("Failed to stop profiling", profErr)
	}

	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
