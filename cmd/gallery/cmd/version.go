package cmd

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Show the gallery version and build time.",
		Usage: "gallery version",
		Run: func(args []string) error {
			printVersion()
			return nil
		},
	})
}
