package commands

const (
	_etc = "/usr/local/etc/com.github.ga-sheets"
	_var = "/usr/local/var/com.github.ga-sheets"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
)
