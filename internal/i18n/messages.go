package i18n

var defaultMessages = `
	[app_usage]
	other = "Guard your commits: analyze staged changes before they reach an AI or the history"

	[app_description]
	other = "gitguard scores and packs your staged diff under a token budget, warns when a commit mixes unrelated packages, and suggests conventional commit messages"

	[prepare_command_usage]
	other = "Run the prepare-commit-msg analysis on a commit message file"

	[suggest_command_usage]
	other = "Analyze staged changes and suggest commit messages"

	[config_command_usage]
	other = "Manage gitguard configuration"

	[config_init_usage]
	other = "Create a default configuration file"

	[config_set_usage]
	other = "Set a configuration value"

	[config_show_usage]
	other = "Show the active configuration"

	[hook_command_usage]
	other = "Install or remove the prepare-commit-msg hook"

	[hook_install_usage]
	other = "Install the prepare-commit-msg hook into .git/hooks"

	[hook_uninstall_usage]
	other = "Remove the gitguard prepare-commit-msg hook"

	[analyzing_changes]
	other = "Analyzing changes..."

	[no_staged_changes]
	other = "No staged changes to commit.\nUse 'git add' to stage your changes first"

	[no_diff_detected]
	other = "No differences detected in the staged files"

	[split_detected_header]
	other = "⚠️  This commit spans multiple packages"

	[split_reason]
	other = "Reason: {{.Reason}}"

	[split_subcommit]
	other = "{{.Order}}. {{.Type}}({{.Scope}}): {{.Count}} file(s)"

	[split_choice_prompt]
	other = "Keep everything in one commit [Enter], or pick a group to commit first (1-{{.Max}}):"

	[split_keep_all]
	other = "Keeping all changes in a single commit"

	[split_rescoped]
	other = "Unstaged {{.Count}} file(s); re-analyzing the reduced change set"

	[budget_exceeded_header]
	other = "🚫 Prompt exceeds the configured AI budget"

	[budget_explanation]
	other = "Estimated {{.Tokens}} tokens (~{{.Cost}}), but the API ceiling is {{.MaxTokens}} tokens / {{.MaxCost}}.\nThe clipboard ceiling is {{.ClipboardMax}} tokens, so a manual export may still work.\nReduce the change set or raise max_prompt_tokens in your config."

	[budget_within_limits]
	other = "Estimated {{.Tokens}} tokens (~{{.Cost}}) within limits"

	[strategy_selected]
	other = "Using {{.Name}} diff ({{.Tokens}} estimated tokens)"

	[diff_truncated]
	other = "{{.Omitted}} related group(s) omitted to fit the diff budget"

	[suggestions_header]
	other = "✨ AI Suggestions:"

	[suggestion_choice_prompt]
	other = "Choose suggestion (1-{{.Max}}) or press Enter to skip:"

	[use_message_prompt]
	other = "Use suggested message? [Y/n]"

	[message_updated]
	other = "✅ Commit message updated!"

	[clipboard_copied]
	other = "📋 Prompt copied to the clipboard ({{.Tokens}} estimated tokens)"

	[clipboard_over_limit]
	other = "Prompt exceeds even the clipboard ceiling of {{.Max}} tokens"

	[merge_commit_skipped]
	other = "Merge commit detected, skipping analysis"

	[config_saved]
	other = "Configuration saved to {{.Path}}"

	[config_current]
	other = "Current configuration"

	[config_unknown_key]
	other = "Unknown configuration key: {{.Key}}"

	[hook_installed]
	other = "✅ prepare-commit-msg hook installed at {{.Path}}"

	[hook_uninstalled]
	other = "Hook removed"

	[error_missing_api_key]
	other = "Gemini API key is not configured. AI suggestions are disabled"

	[error_no_suggestions]
	other = "The AI returned no usable suggestions"

	[ui.token_usage]
	other = "Token usage"

	[ui.input]
	other = "Input:"

	[ui.output]
	other = "Output:"

	[ui.total]
	other = "Total:"

	[ui.estimated_cost]
	other = "Estimated cost:"

	[ui.included_files]
	other = "Included files"

	[ui.groups_covered]
	other = "Groups covered"
`
