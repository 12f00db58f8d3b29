package commands

const (
	_etc = "/usr/local/etc/ga-app-sheets"
	_var = "/usr/local/var/ga-app-sheets"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
)
