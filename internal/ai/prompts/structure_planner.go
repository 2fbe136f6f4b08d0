package prompts

import "fmt"

const StructureSystemPrompt = "You are a skilled and creative software developer."

// StructurePrefill opens the assistant turn so the reply starts inside a JSON object.
const StructurePrefill = "{"

// GetProjectStructurePrompt asks for the project's file/directory manifest as JSON.
func GetProjectStructurePrompt(projectDescription string) string {
	prompt := `
<project_description>
%s
</project_description>

Based on the project description above, provide a high-level overview of the project structure, including the main files
and directories that will be created. The project structure should be based on best practices. Also, include a
description of each file's purpose. One of the top level files should be a README.md file.

Return the project structure in the following JSON format. Directories may contain their own "files" and "directories".

{
    "files": [
        {
            "type": "file",
            "name": "file1.txt",
            "description": "File 1 description"
        }
    ],
    "directories": [
        {
            "type": "directory",
            "name": "dir1",
            "description": "Directory 1 description",
            "files": [
                {
                    "type": "file",
                    "name": "file3.txt",
                    "description": "File 3 description"
                }
            ],
            "directories": []
        }
    ]
}

example:
{
    "files": [
        {
            "type": "file",
            "name": "README.md",
            "description": "project README.md"
        }
    ],
    "directories": [
        {
            "type": "directory",
            "name": "dir1",
            "description": "Directory 1 description",
            "files": [
                {
                    "type": "file",
                    "name": "file3.txt",
                    "description": "File 3 description"
                }
            ]
        }
    ]
}
`
	return fmt.Sprintf(prompt, projectDescription)
}
