package prompts

import "fmt"

const FileCodeSystemPrompt = "Given the project description, file description, and file path, generate the code for the file.  Your response should only contain the code."

// Markers the model is told to wrap its answer in.
const (
	CodeOpenTag  = "<code>"
	CodeCloseTag = "</code>"
)

// GetFileCodePrompt builds the per-file generation prompt.
func GetFileCodePrompt(projectDescription, fileDescription, filePath string) string {
	prompt := `
		<project_description>
		%s
		</project_description>

		<file_description>
		%s
		</file_description>

		<file_path>
		%s
		</file_path>

		Based on the project description, file description, and file path above, generate the code for the file.
		Use this format for your response:

		<file_name>
			file1.py
		</file_name>
		<code>
			all code generation goes here
		</code>

		Here is an example:

		<file_name>
			file1.py
		</file_name>

		<code>
			import os
			print("hello")
		</code>

		Here is another example:

		<file_name>
			__init__.py
		</file_name>

		<code>
		</code>
	`
	return fmt.Sprintf(prompt, projectDescription, fileDescription, filePath)
}
