// Project list commands.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/folio/internal/repo"
	"github.com/mesh-intelligence/folio/internal/session"
	"github.com/mesh-intelligence/folio/pkg/types"
)

var (
	projectTitle       string
	projectDescription string
	projectThumbnail   string
	projectThumbFile   string
	projectVideoURL    string
	projectVideoFile   string
	projectTags        string
	projectYear        string
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage the project showcase",
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects in display order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session.Session) error {
			projects := s.Repo().Projects()
			if flagJSON {
				return printJSON(projects)
			}
			for i, p := range projects {
				fmt.Printf("%d. [id %d] %s (%d)\n", i+1, p.ID, p.Title, p.Year)
			}
			return nil
		})
	},
}

var projectAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append a project",
	Long: `Add appends a project to the end of the showcase and assigns it the
next id (one past the highest ever used; removed ids are not recycled).

--thumbnail-file and --video-file copy local files into the site's
asset directories and store the resulting paths; --thumbnail and
--video-url store the given strings as-is.

Example:
  folio project add --title "Short Film" --year 2024 --tags "film, 2d"
  folio project add --title Reel --video-file ~/clips/reel.mp4`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := types.ParseYear(projectYear)
		if err != nil {
			return err
		}
		thumbnail, videoURL := projectThumbnail, projectVideoURL
		if projectThumbFile != "" {
			dirs, err := assetDirs()
			if err != nil {
				return err
			}
			if thumbnail, err = dirs.ImportThumbnail(projectThumbFile); err != nil {
				return err
			}
		}
		if projectVideoFile != "" {
			dirs, err := assetDirs()
			if err != nil {
				return err
			}
			if videoURL, err = dirs.ImportVideo(projectVideoFile); err != nil {
				return err
			}
		}

		return mutate(func(r *repo.Repository) error {
			stored := r.AddProject(types.Project{
				Title:       projectTitle,
				Description: projectDescription,
				Thumbnail:   thumbnail,
				VideoURL:    videoURL,
				Tags:        strings.Split(projectTags, ","),
				Year:        year,
			})
			fmt.Printf("Added project: %s (id %d)\n", stored.Title, stored.ID)
			return nil
		})
	},
}

var projectUpdateCmd = &cobra.Command{
	Use:   "update <position>",
	Short: "Update the project at a position (1-based)",
	Long: `Update replaces the given fields of the project at the position.
Omitted flags keep their current values; the project keeps its id.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		return mutate(func(r *repo.Repository) error {
			projects := r.Projects()
			if index >= len(projects) {
				return r.UpdateProject(index, types.Project{})
			}
			p := projects[index]
			if cmd.Flags().Changed("title") {
				p.Title = projectTitle
			}
			if cmd.Flags().Changed("description") {
				p.Description = projectDescription
			}
			if cmd.Flags().Changed("thumbnail") {
				p.Thumbnail = projectThumbnail
			}
			if cmd.Flags().Changed("video-url") {
				p.VideoURL = projectVideoURL
			}
			if cmd.Flags().Changed("tags") {
				p.Tags = strings.Split(projectTags, ",")
			}
			if cmd.Flags().Changed("year") {
				year, err := types.ParseYear(projectYear)
				if err != nil {
					return err
				}
				p.Year = year
			}
			if projectThumbFile != "" {
				dirs, err := assetDirs()
				if err != nil {
					return err
				}
				if p.Thumbnail, err = dirs.ImportThumbnail(projectThumbFile); err != nil {
					return err
				}
			}
			if projectVideoFile != "" {
				dirs, err := assetDirs()
				if err != nil {
					return err
				}
				if p.VideoURL, err = dirs.ImportVideo(projectVideoFile); err != nil {
					return err
				}
			}
			if err := r.UpdateProject(index, p); err != nil {
				return err
			}
			fmt.Println("Project updated")
			return nil
		})
	},
}

var projectRemoveCmd = &cobra.Command{
	Use:   "remove <position>",
	Short: "Remove the project at a position (1-based)",
	Long: `Remove deletes the project at the position. Remaining projects keep
their ids; the removed id is never reassigned.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		return mutate(func(r *repo.Repository) error {
			removed, err := r.RemoveProject(index)
			if err != nil {
				return err
			}
			fmt.Printf("Removed: %s (id %d)\n", removed.Title, removed.ID)
			return nil
		})
	},
}

func addProjectFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&projectTitle, "title", "", "project title")
	cmd.Flags().StringVar(&projectDescription, "description", "", "project description")
	cmd.Flags().StringVar(&projectThumbnail, "thumbnail", "", "thumbnail path to store as-is")
	cmd.Flags().StringVar(&projectThumbFile, "thumbnail-file", "", "local image to copy into assets/projects/")
	cmd.Flags().StringVar(&projectVideoURL, "video-url", "", "video URL to store as-is")
	cmd.Flags().StringVar(&projectVideoFile, "video-file", "", "local video to copy into assets/videos/")
	cmd.Flags().StringVar(&projectTags, "tags", "", "comma-separated tags")
	cmd.Flags().StringVar(&projectYear, "year", "", "project year")
}

func init() {
	addProjectFlags(projectAddCmd)
	_ = projectAddCmd.MarkFlagRequired("title")
	addProjectFlags(projectUpdateCmd)

	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectUpdateCmd)
	projectCmd.AddCommand(projectRemoveCmd)
}
