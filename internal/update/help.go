package update

const helpText = `# dayplan help

## Day navigation
- ` + "`h` / `l`" + ` (or arrows): previous / next day
- ` + "`t`" + `: jump back to today
- ` + "`/goto 2024-01-15`" + `: open any date

## Tasks
- ` + "`j` / `k`" + `: move between tasks
- ` + "`space` / `enter`" + `: toggle done
- ` + "`a`" + `: add a task for the shown day
- ` + "`d`" + ` then ` + "`y`" + `: delete the highlighted task

## Command palette
- ` + "`/`" + ` opens it; commands: add, goto, today, toggle, delete
- ` + "`add Team Football @20:00`" + ` takes an optional time label

Press ` + "`?`" + ` again to close this help.
`
